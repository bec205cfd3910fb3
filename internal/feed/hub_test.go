package feed

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesAllObservers(t *testing.T) {
	hub := NewHub()

	id1, ch1 := hub.Subscribe()
	id2, ch2 := hub.Subscribe()
	defer hub.Unsubscribe(id1)
	defer hub.Unsubscribe(id2)

	hub.Broadcast([]byte(`[{"id":1}]`))

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case payload := <-ch:
			assert.Equal(t, `[{"id":1}]`, string(payload))
		case <-time.After(time.Second):
			t.Fatal("observer did not receive the snapshot")
		}
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	id, ch := hub.Subscribe()
	require.Equal(t, 1, hub.Len())

	hub.Unsubscribe(id)
	assert.Equal(t, 0, hub.Len())

	// canal fechado sinaliza o fim do stream para o handler
	_, open := <-ch
	assert.False(t, open)

	// unsubscribe repetido é inofensivo
	hub.Unsubscribe(id)
}

func TestHubSlowObserverDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()

	slowID, _ := hub.Subscribe() // nunca drenado
	fastID, fast := hub.Subscribe()
	defer hub.Unsubscribe(slowID)
	defer hub.Unsubscribe(fastID)

	// estoura o buffer do observador lento; nenhum broadcast pode travar
	for i := 0; i < observerBuffer*2; i++ {
		hub.Broadcast([]byte(fmt.Sprintf(`["snapshot %d"]`, i)))
		// mantém o rápido drenado
		select {
		case <-fast:
		case <-time.After(time.Second):
			t.Fatal("fast observer starved by slow observer")
		}
	}
}

func TestHubConcurrentSubscribeDuringBroadcast(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup

	// broadcasts e (de)registros entrelaçados não podem corromper o set
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Broadcast([]byte(`[]`))
		}()
		go func() {
			defer wg.Done()
			id, _ := hub.Subscribe()
			hub.Unsubscribe(id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Len())
}
