package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rakib-hossain32/doha-popular/internal/modules/serializer"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
)

// ContextKeyAdminEmail holds the signed-in admin's email once a gate has passed.
const ContextKeyAdminEmail = "admin_email"

// LoginPath is where unauthenticated admin page requests are sent.
const LoginPath = "/admin/login"

// SessionToken reads the admin token from the session cookie, falling back to a bearer header.
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

type denyFunc func(c *gin.Context)

// AdminAPI gates JSON endpoints: a missing or unknown session answers 401.
func AdminAPI(auth service.AuthService, cookieName string) gin.HandlerFunc {
	return adminGate(auth, cookieName, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
	})
}

// AdminPage gates server-rendered pages: a missing or unknown session redirects
// to the sign-in page, carrying the requested path as callbackUrl.
func AdminPage(auth service.AuthService, cookieName string) gin.HandlerFunc {
	return adminGate(auth, cookieName, func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, LoginPath+"?callbackUrl="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	})
}

func adminGate(auth service.AuthService, cookieName string, deny denyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "admin_auth",
			trace.WithAttributes(attribute.String("middleware", "admin_auth")))
		defer span.End()

		token := SessionToken(c, cookieName)
		if token == "" {
			span.SetAttributes(attribute.Bool("authenticated", false))
			deny(c)
			return
		}

		sess, err := auth.Verify(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				span.SetAttributes(attribute.Bool("authenticated", false))
				deny(c)
				return
			}
			span.RecordError(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("failed to verify session", err))
			return
		}

		span.SetAttributes(attribute.Bool("authenticated", true))
		c.Set(ContextKeyAdminEmail, sess.Email)
		c.Next()
	}
}
