package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/session"
)

// WorkspaceBuilder assembles the managers and services for a fresh session.
type WorkspaceBuilder func(sess *session.Session) *Workspace

// AuthHandler drives login, logout, and session introspection.
type AuthHandler struct {
	gate   *session.Gate
	holder *Holder
	build  WorkspaceBuilder
	logger *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter for the session gate.
func NewAuthHandler(gate *session.Gate, holder *Holder, build WorkspaceBuilder, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{gate: gate, holder: holder, build: build, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for an authenticated workspace.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password are required"})
		return
	}

	sess, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.holder.Set(h.build(sess))
	h.logger.Info("admin signed in", zap.String("username", sess.Username))
	c.JSON(http.StatusOK, sessionView(sess))
}

// Demo establishes a demo workspace with no backend round trip.
func (h *AuthHandler) Demo(c *gin.Context) {
	sess := h.gate.StartDemo()
	h.holder.Set(h.build(sess))
	h.logger.Info("demo session started")
	c.JSON(http.StatusOK, sessionView(sess))
}

// Logout clears the stored token and drops the workspace.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.holder.Clear()
	c.Status(http.StatusNoContent)
}

// Current reports the active session back to the token holder.
func (h *AuthHandler) Current(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok || bearerToken(c) != ws.Session.Token {
		unauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, sessionView(ws.Session))
}

// Require is the route-group middleware guarding every admin endpoint. A
// workspace alone is not enough; the caller must present the active
// session's bearer token.
func (h *AuthHandler) Require(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}
	if token := bearerToken(c); token == "" || token != ws.Session.Token {
		unauthenticated(c)
		return
	}
	c.Next()
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, prefix) {
		return strings.TrimPrefix(header, prefix)
	}
	return ""
}

func sessionView(sess *session.Session) gin.H {
	mode := "live"
	if sess.Demo() {
		mode = "demo"
	}
	return gin.H{"username": sess.Username, "mode": mode, "token": sess.Token}
}
