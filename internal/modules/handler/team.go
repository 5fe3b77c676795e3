package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

// ListTeam godoc
//
//	@Summary	List team members
//	@Tags		team
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.TeamMember}
//	@Router		/team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch team members", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: members})
}

// CreateTeamMember godoc
//
//	@Summary	Create team member
//	@Tags		team
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	model.TeamMember	true	"Team member"
//	@Security	AdminSession
//	@Success	201	{object}	serializer.Response{data=handler.CreatedResp}
//	@Router		/team [post]
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var m model.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to create team member", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: CreatedResp{ID: id}})
}

// UpdateTeamMember godoc
//
//	@Summary	Update team member
//	@Tags		team
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string			true	"Team member ID"
//	@Param		payload	body	map[string]any	true	"Fields to set"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{}
//	@Failure	400	{object}	serializer.Response{}
//	@Failure	404	{object}	serializer.Response{}
//	@Router		/team/{id} [put]
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, fields); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("team member not found"))
			return
		}
		if errors.Is(err, service.ErrInvalidField) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid field value", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to update team member", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "team member updated"})
}

// DeleteTeamMember godoc
//
//	@Summary	Delete team member
//	@Tags		team
//	@Produce	json
//	@Param		id	path	string	true	"Team member ID"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{}
//	@Failure	404	{object}	serializer.Response{}
//	@Router		/team/{id} [delete]
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("team member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to delete team member", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "team member deleted"})
}
