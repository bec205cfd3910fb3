package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/bellasalon/booking-api/internal/feed"
)

type EventsHandler struct {
	hub *feed.Hub
}

func NewEventsHandler(hub *feed.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream mantém a conexão SSE aberta: registra o observador, repassa
// cada snapshot como evento "bookings" e remove o observador quando o
// cliente desconecta.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	id, snapshots := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	// intervalo de reconexão sugerido ao EventSource do navegador
	fmt.Fprint(c.Writer, "retry: 10000\n\n")
	c.Writer.Flush()

	done := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case payload, ok := <-snapshots:
			if !ok {
				return false
			}
			fmt.Fprintf(w, "event: bookings\ndata: %s\n\n", payload)
			return true
		}
	})
}
