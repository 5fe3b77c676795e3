package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/middleware"
	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

// CookieConfig describes the admin session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (cc CookieConfig) set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.Name, token, int(cc.TTL.Seconds()), "/", "", cc.Secure, true)
}

func (cc CookieConfig) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.Name, "", -1, "/", "", cc.Secure, true)
}

type AuthHandler struct {
	svc    service.AuthService
	cookie CookieConfig
}

func NewAuthHandler(s service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{svc: s, cookie: cookie}
}

type LoginReq struct {
	Email    string `json:"email" form:"email" binding:"required" example:"admin@dohapopular.com"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResp struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login godoc
//
//	@Summary		Admin sign-in
//	@Description	Issues a session cookie. The token is also returned for bearer use.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Credentials"
//	@Success		200	{object}	serializer.Response{data=handler.LoginResp}
//	@Failure		401	{object}	serializer.Response{}
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	sess, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to sign in", err))
		return
	}
	h.cookie.set(c, sess.Token)
	c.JSON(http.StatusOK, serializer.Response{Data: LoginResp{Token: sess.Token, Email: sess.Email, ExpiresAt: sess.ExpiresAt}})
}

// Logout godoc
//
//	@Summary	Admin sign-out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	serializer.Response{}
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name)); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to sign out", err))
		return
	}
	h.cookie.clear(c)
	c.JSON(http.StatusOK, serializer.Response{Msg: "signed out"})
}

// Session godoc
//
//	@Summary	Current admin session
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=service.AdminSession}
//	@Failure	401	{object}	serializer.Response{}
//	@Router		/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, err := h.svc.Verify(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("failed to verify session", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sess})
}
