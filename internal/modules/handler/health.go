package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
)

type HealthHandler struct {
	store docstore.Store
}

func NewHealthHandler(store docstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
//
//	@Summary	Liveness and store reachability
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	serializer.Response{}
//	@Failure	503	{object}	serializer.Response{}
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, "document store unreachable", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}
