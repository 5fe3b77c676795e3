package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type CareerHandler struct {
	svc service.CareerService
}

func NewCareerHandler(s service.CareerService) *CareerHandler {
	return &CareerHandler{svc: s}
}

// SubmitApplication godoc
//
//	@Summary		Submit career application
//	@Description	name, email and position are required. The admin mailbox is notified on a best-effort basis.
//	@Tags			careers
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.SubmitApplicationInput	true	"Application"
//	@Success		200	{object}	serializer.Response{data=handler.CreatedResp}
//	@Failure		400	{object}	serializer.Response{}
//	@Failure		429	{object}	serializer.Response{}
//	@Router			/careers [post]
func (h *CareerHandler) SubmitApplication(c *gin.Context) {
	var in service.SubmitApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	app, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to submit application", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: CreatedResp{ID: app.ID}, Msg: "application submitted"})
}

// ListApplications godoc
//
//	@Summary	List career applications
//	@Tags		careers
//	@Produce	json
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=[]model.Application}
//	@Router		/careers [get]
func (h *CareerHandler) ListApplications(c *gin.Context) {
	apps, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch applications", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: apps})
}

// DeleteApplication godoc
//
//	@Summary	Delete career application
//	@Tags		careers
//	@Produce	json
//	@Param		id	path	string	true	"Application ID"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=handler.DeletedResp}
//	@Router		/careers/{id} [delete]
func (h *CareerHandler) DeleteApplication(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to delete application", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: DeletedResp{DeletedCount: deleted}})
}
