package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type ContactHandler struct {
	svc service.InquiryService
}

func NewContactHandler(s service.InquiryService) *ContactHandler {
	return &ContactHandler{svc: s}
}

// SubmitInquiry godoc
//
//	@Summary		Submit contact inquiry
//	@Description	Stored as unread. The admin mailbox is notified on a best-effort basis.
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.SubmitInquiryInput	true	"Inquiry"
//	@Success		200	{object}	serializer.Response{data=handler.CreatedResp}
//	@Failure		429	{object}	serializer.Response{}
//	@Router			/contact [post]
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	var in service.SubmitInquiryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	inq, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to submit inquiry", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: CreatedResp{ID: inq.ID}, Msg: "inquiry submitted"})
}

// ListInquiries godoc
//
//	@Summary	List contact inquiries
//	@Tags		contact
//	@Produce	json
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=[]model.Inquiry}
//	@Router		/contact [get]
func (h *ContactHandler) ListInquiries(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch inquiries", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: list})
}

// DeleteInquiry godoc
//
//	@Summary		Delete contact inquiry
//	@Description	The id may be given as ?id= or as a path segment.
//	@Tags			contact
//	@Produce		json
//	@Param			id	query	string	true	"Inquiry ID"
//	@Security		AdminSession
//	@Success		200	{object}	serializer.Response{data=handler.DeletedResp}
//	@Router			/contact [delete]
func (h *ContactHandler) DeleteInquiry(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to delete inquiry", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: DeletedResp{DeletedCount: deleted}})
}
