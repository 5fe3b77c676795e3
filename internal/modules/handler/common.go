package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIDRequired = errors.New("id is required")

// resourceID accepts the id as a path segment or as the ?id= query parameter.
func resourceID(c *gin.Context) (string, error) {
	if id := c.Param("id"); id != "" {
		return id, nil
	}
	if id := c.Query("id"); id != "" {
		return id, nil
	}
	return "", errIDRequired
}

type CreatedResp struct {
	ID string `json:"id"`
}

type MatchedResp struct {
	MatchedCount int64 `json:"matchedCount"`
}

type DeletedResp struct {
	DeletedCount int64 `json:"deletedCount"`
}
