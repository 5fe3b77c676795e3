package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		projects
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to fetch projects", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// CreateProject godoc
//
//	@Summary	Create project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	model.Project	true	"Project"
//	@Security	AdminSession
//	@Success	201	{object}	serializer.Response{data=handler.CreatedResp}
//	@Router		/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to create project", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: CreatedResp{ID: id}})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Merges the body into the stored project; absent fields are left untouched.
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string			true	"Project ID"
//	@Param			payload	body	map[string]any	true	"Fields to set"
//	@Security		AdminSession
//	@Success		200	{object}	serializer.Response{data=handler.MatchedResp}
//	@Failure		400	{object}	serializer.Response{}
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
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
	matched, err := h.svc.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, service.ErrInvalidField) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid field value", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to update project", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: MatchedResp{MatchedCount: matched}})
}

// DeleteProject godoc
//
//	@Summary	Delete project
//	@Tags		projects
//	@Produce	json
//	@Param		id	path	string	true	"Project ID"
//	@Security	AdminSession
//	@Success	200	{object}	serializer.Response{data=handler.DeletedResp}
//	@Router		/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to delete project", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: DeletedResp{DeletedCount: deleted}})
}
