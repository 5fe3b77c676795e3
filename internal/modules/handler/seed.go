package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type SeedHandler struct {
	svc service.SeedService
}

func NewSeedHandler(s service.SeedService) *SeedHandler {
	return &SeedHandler{svc: s}
}

type SeedResp struct {
	Inserted int `json:"inserted"`
}

// ReseedProjects godoc
//
//	@Summary		Reseed projects
//	@Description	Deletes every project and loads the built-in portfolio.
//	@Tags			maintenance
//	@Produce		json
//	@Security		AdminSession
//	@Success		200	{object}	serializer.Response{data=handler.SeedResp}
//	@Router			/seed [post]
func (h *SeedHandler) ReseedProjects(c *gin.Context) {
	n, err := h.svc.ReseedProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to seed projects", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: SeedResp{Inserted: n}, Msg: "projects seeded"})
}
