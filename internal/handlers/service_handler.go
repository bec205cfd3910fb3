package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bellasalon/booking-api/internal/cache"
	domain "github.com/bellasalon/booking-api/internal/domain/booking"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/httpresp"
)

type ServiceHandler struct {
	repo  domain.Repository
	cache *cache.ServiceCache
}

func NewServiceHandler(repo domain.Repository, c *cache.ServiceCache) *ServiceHandler {
	return &ServiceHandler{repo: repo, cache: c}
}

// List devolve o catálogo; cache-aside no Redis porque o catálogo não
// muda depois do seed.
func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.cache.Get(ctx); ok {
		httpresp.OK(c, services)
		return
	}

	services, err := h.repo.ListServices(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	h.cache.Set(ctx, services)
	httpresp.OK(c, services)
}
