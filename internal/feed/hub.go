package feed

import (
	"log"
	"sync"
)

// Hub guarda o conjunto de observadores do feed. Registro e remoção são
// seguros durante um broadcast em andamento: o broadcast itera sob RLock
// e cada observador tem um canal com buffer próprio, então um cliente
// travado não segura a entrega para os demais.
type Hub struct {
	mu        sync.RWMutex
	observers map[uint64]chan []byte
	nextID    uint64
}

const observerBuffer = 16

func NewHub() *Hub {
	return &Hub{
		observers: make(map[uint64]chan []byte),
	}
}

// Subscribe registra um observador e devolve o id para o Unsubscribe e o
// canal de snapshots.
func (h *Hub) Subscribe() (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan []byte, observerBuffer)
	h.observers[id] = ch
	return id, ch
}

// Unsubscribe remove e fecha o canal do observador; chamar duas vezes é
// inofensivo.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.observers[id]; ok {
		delete(h.observers, id)
		close(ch)
	}
}

// Broadcast entrega o payload a todos os observadores registrados. Envio
// é não-bloqueante: observador com buffer cheio perde este snapshot (o
// próximo broadcast traz o estado completo de novo).
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.observers {
		select {
		case ch <- payload:
		default:
			log.Printf("feed: observer %d too slow, snapshot dropped", id)
		}
	}
}

// Len informa quantos observadores estão abertos.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}
