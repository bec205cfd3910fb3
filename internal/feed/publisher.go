package feed

import (
	"context"
	"encoding/json"
	"log"
	"time"

	domain "github.com/bellasalon/booking-api/internal/domain/booking"
)

// Publisher recalcula o snapshot completo do ledger a cada mutação e o
// entrega ao hub. Snapshot inteiro, não diff: o contrato do feed é
// "estado completo eventualmente consistente".
type Publisher struct {
	hub  *Hub
	repo domain.Repository
}

func NewPublisher(hub *Hub, repo domain.Repository) *Publisher {
	return &Publisher{
		hub:  hub,
		repo: repo,
	}
}

const publishTimeout = 5 * time.Second

// Publish dispara o recálculo e o broadcast. Erros são logados e
// engolidos; o feed nunca falha a request que mudou o ledger.
func (p *Publisher) Publish() {
	go p.publish()
}

func (p *Publisher) publish() {
	// contexto próprio: a request que disparou já pode ter terminado
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	views, err := p.repo.ListAll(ctx)
	if err != nil {
		log.Println("feed: snapshot query failed:", err)
		return
	}

	payload, err := json.Marshal(views)
	if err != nil {
		log.Println("feed: snapshot marshal failed:", err)
		return
	}

	p.hub.Broadcast(payload)
}
