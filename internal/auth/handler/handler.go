package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sessions-service/internal/auth"
	"sessions-service/internal/logger"
	"sessions-service/internal/middleware"
	"sessions-service/internal/session"
)

type Handler struct {
	controller *auth.Controller
}

func NewHandler(controller *auth.Controller) *Handler {
	return &Handler{controller: controller}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", h.home)
	r.POST("/", h.login)
	r.POST("/logout", h.Logout)
}

// home shows the personal account page when the cookie resolves to a
// live session, the login form otherwise. A store failure lands on the
// login form too: recognition fails closed.
func (h *Handler) home(c *gin.Context) {
	verdict := h.controller.Recognize(c.Request.Context(), c.GetHeader("Cookie"))
	if verdict.Authenticated() {
		c.HTML(http.StatusOK, "account", gin.H{"Username": verdict.Username})
		return
	}
	c.HTML(http.StatusOK, "login", nil)
}

// login verifies the posted credential pair. Success sets the session
// cookie and shows the welcome page; rejection shows the failed page
// with no cookie and no store change.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	verdict, err := h.controller.Login(c.Request.Context(), username, password)
	if err != nil {
		c.String(http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if !verdict.Authenticated() {
		c.HTML(http.StatusUnauthorized, "failed", nil)
		return
	}

	session.SetCookie(c.Writer, verdict.SessionID, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("login success", map[string]any{
		"username":   verdict.Username,
		"session_id": verdict.SessionID,
		"request_id": middleware.RequestIDFrom(c),
		"ip":         c.ClientIP(),
	})

	c.HTML(http.StatusOK, "welcome", gin.H{"Username": verdict.Username})
}

// Logout drops the session named by the cookie and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.controller.Logout(c.Request.Context(), c.GetHeader("Cookie")); err != nil {
		// Best-effort: the cookie still gets cleared below.
		logger.Warn("logout: session removal failed", map[string]any{
			"error": err.Error(),
		})
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}

// Me reports the identity attached by the auth middleware.
func (h *Handler) Me(c *gin.Context) {
	verdict, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":   verdict.Username,
		"session_id": verdict.SessionID,
	})
}
