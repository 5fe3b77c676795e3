package serializer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type applyForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Position string `validate:"required"`
}

func TestValidationMessage(t *testing.T) {
	err := validator.New().Struct(applyForm{Email: "not-an-email"})
	assert.Equal(t, "name is required; email must be a valid email; position is required", ValidationMessage(err))
	assert.Equal(t, "", ValidationMessage(errors.New("plain")))
}

func TestParamErr_UsesValidationMessage(t *testing.T) {
	err := validator.New().Struct(applyForm{Name: "A", Email: "a@x.com"})
	res := ParamErr("", err)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "position is required", res.Msg)

	res = ParamErr("invalid body", err)
	assert.Equal(t, "invalid body", res.Msg)
}

func TestErr_HidesDetailInReleaseMode(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	res := DBErr("failed to fetch projects", errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Empty(t, res.Error)

	gin.SetMode(gin.TestMode)
	res = DBErr("failed to fetch projects", errors.New("connection refused"))
	assert.Equal(t, "connection refused", res.Error)
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "not found", NotFoundErr("").Msg)
	assert.Equal(t, "too many requests", TooManyErr("").Msg)
	assert.Equal(t, "authentication error", AuthErr("").Msg)
}
