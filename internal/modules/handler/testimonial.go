package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type TestimonialHandler struct {
	svc service.TestimonialService
}

func NewTestimonialHandler(s service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: s}
}

// ListTestimonials godoc
//
//	@Summary		List testimonials
//	@Description	Newest first. page defaults to 1 and limit to 10.
//	@Tags			testimonials
//	@Produce		json
//	@Param			status	query	string	false	"Status filter, e.g. approved"
//	@Param			page	query	integer	false	"Page number"	example(1)
//	@Param			limit	query	integer	false	"Page size"		example(10)
//	@Success		200	{object}	serializer.Response{data=service.ListTestimonialsOutput}
//	@Router			/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	var in service.ListTestimonialsInput
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch testimonials", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateTestimonial godoc
//
//	@Summary		Submit testimonial
//	@Description	Stored as pending. rating defaults to 5 and avatar to a generated image.
//	@Tags			testimonials
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CreateTestimonialInput	true	"Testimonial"
//	@Success		201	{object}	serializer.Response{data=model.Testimonial}
//	@Failure		429	{object}	serializer.Response{}
//	@Router			/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var in service.CreateTestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	t, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to submit testimonial", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: t})
}

type SetStatusReq struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// SetTestimonialStatus godoc
//
//	@Summary	Set testimonial status
//	@Tags		testimonials
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string					true	"Testimonial ID"
//	@Param		payload	body	handler.SetStatusReq	true	"New status"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=handler.MatchedResp}
//	@Router		/testimonials/{id} [patch]
func (h *TestimonialHandler) SetTestimonialStatus(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	var req SetStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	matched, err := h.svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to update testimonial", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: MatchedResp{MatchedCount: matched}})
}

// DeleteTestimonial godoc
//
//	@Summary	Delete testimonial
//	@Tags		testimonials
//	@Produce	json
//	@Param		id	path	string	true	"Testimonial ID"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=handler.DeletedResp}
//	@Router		/testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to delete testimonial", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: DeletedResp{DeletedCount: deleted}})
}
