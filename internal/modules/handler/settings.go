package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: s}
}

// GetSettings godoc
//
//	@Summary		Get site settings
//	@Description	Returns built-in defaults until settings are first saved.
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=model.Settings}
//	@Router			/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch settings", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: s})
}

// SaveSettings godoc
//
//	@Summary		Save site settings
//	@Description	Merges the body into the settings document, creating it on first save.
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	map[string]any	true	"Fields to set"
//	@Security		AdminSession
//	@Success		200	{object}	serializer.Response{}
//	@Failure		400	{object}	serializer.Response{}
//	@Router			/settings [post]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.Save(c.Request.Context(), fields); err != nil {
		if errors.Is(err, service.ErrInvalidField) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid field value", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to save settings", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "settings saved"})
}
