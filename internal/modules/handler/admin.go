package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rakib-hossain32/doha-popular/internal/middleware"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// AdminTemplates parses the embedded admin pages for gin's HTML renderer.
func AdminTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// AdminPageHandler serves the sign-in page and the dashboard shell.
type AdminPageHandler struct {
	auth      service.AuthService
	dashboard service.DashboardService
	settings  service.SettingsService
	cookie    CookieConfig
	log       *zap.Logger
}

func NewAdminPageHandler(auth service.AuthService, dashboard service.DashboardService, settings service.SettingsService, cookie CookieConfig, log *zap.Logger) *AdminPageHandler {
	return &AdminPageHandler{auth: auth, dashboard: dashboard, settings: settings, cookie: cookie, log: log.Named("admin")}
}

// safeCallback keeps post-login redirects on the admin surface.
func safeCallback(raw string) string {
	if !strings.HasPrefix(raw, "/admin") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return "/admin"
	}
	if raw == middleware.LoginPath || strings.HasPrefix(raw, middleware.LoginPath+"?") {
		return "/admin"
	}
	return raw
}

func (h *AdminPageHandler) siteName(c *gin.Context) string {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil || s.SiteName == "" {
		return "Admin"
	}
	return s.SiteName
}

func (h *AdminPageHandler) LoginPage(c *gin.Context) {
	if _, err := h.auth.Verify(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name)); err == nil {
		c.Redirect(http.StatusSeeOther, safeCallback(c.Query("callbackUrl")))
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"SiteName":    h.siteName(c),
		"CallbackURL": safeCallback(c.Query("callbackUrl")),
	})
}

func (h *AdminPageHandler) LoginSubmit(c *gin.Context) {
	var req LoginReq
	callback := safeCallback(c.PostForm("callbackUrl"))
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"SiteName":    h.siteName(c),
			"CallbackURL": callback,
			"Email":       req.Email,
			"Error":       "Email and password are required",
		})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := http.StatusUnauthorized, "Invalid email or password"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error("admin sign-in failed", zap.Error(err))
			status, msg = http.StatusInternalServerError, "Sign-in is temporarily unavailable"
		}
		c.HTML(status, "login.html", gin.H{
			"SiteName":    h.siteName(c),
			"CallbackURL": callback,
			"Email":       req.Email,
			"Error":       msg,
		})
		return
	}

	h.cookie.set(c, sess.Token)
	c.Redirect(http.StatusSeeOther, callback)
}

func (h *AdminPageHandler) LogoutSubmit(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name)); err != nil {
		h.log.Warn("admin sign-out failed", zap.Error(err))
	}
	h.cookie.clear(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Dashboard renders the console shell; list views load their data from the JSON API.
func (h *AdminPageHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		h.log.Error("dashboard summary", zap.Error(err))
	}
	section := c.Param("section")
	if section == "" {
		section = "overview"
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"SiteName": h.siteName(c),
		"Email":    c.GetString(middleware.ContextKeyAdminEmail),
		"Section":  section,
		"Summary":  summary,
	})
}
