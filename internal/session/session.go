// Package session decides whether a caller may operate the admin back office.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// DemoToken is the sentinel token value that designates a demo session.
// It is never issued by the backend; it routes all reads and writes to the
// local fallback store instead.
const DemoToken = "demo-token-2025"

// Mode is the session kind, resolved exactly once when the session is
// established and carried to every resource manager.
type Mode int

const (
	// ModeLive sessions talk to the backend, with the fallback store as a
	// read-only mirror for outages.
	ModeLive Mode = iota
	// ModeDemo sessions never touch the backend; the fallback store is the
	// primary (and only) store.
	ModeDemo
)

// Session is the resolved admin session handed to resource managers.
type Session struct {
	Token    string
	Username string
	Mode     Mode
}

// Demo reports whether this is a demo session.
func (s *Session) Demo() bool { return s != nil && s.Mode == ModeDemo }

// ErrUnauthenticated signals a missing, cleared, or invalid stored token.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrRejected signals refused login credentials.
var ErrRejected = errors.New("invalid credentials")

// Gate validates tokens and issues sessions.
type Gate struct {
	client    *farmapi.Client
	store     fallback.Store
	forceDemo bool
	logger    *zap.Logger
}

// NewGate wires a session gate instance.
func NewGate(client *farmapi.Client, store fallback.Store, cfg config.SessionConfig, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{client: client, store: store, forceDemo: cfg.ForceDemo, logger: logger}
}

// Login submits the shared admin credentials, persists the issued token, and
// returns an authenticated session.
func (g *Gate) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := g.client.Login(ctx, username, password)
	if err != nil {
		if farmapi.IsAuthError(err) {
			g.logger.Warn("login rejected", zap.String("username", username))
			return nil, ErrRejected
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := g.store.WriteCache(fallback.KeyToken, []byte(token)); err != nil {
		g.logger.Warn("failed persisting token", zap.Error(err))
	}

	return g.establish(token, username), nil
}

// Resume restores a session from the stored token. The demo sentinel and the
// DEMO_MODE override short-circuit verification with no backend round trip;
// any other token is verified against the backend and cleared when invalid.
func (g *Gate) Resume(ctx context.Context) (*Session, error) {
	payload, ok, err := g.store.ReadCache(fallback.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read stored token: %w", err)
	}
	if !ok || len(payload) == 0 {
		if g.forceDemo {
			return g.establish(DemoToken, "demo"), nil
		}
		return nil, ErrUnauthenticated
	}

	token := string(payload)
	if g.forceDemo || token == DemoToken {
		return g.establish(token, "demo"), nil
	}

	username, err := g.client.Verify(ctx, token)
	if err != nil {
		if farmapi.IsAuthError(err) {
			g.logger.Info("stored token invalid, clearing")
			_ = g.store.Delete(fallback.KeyToken)
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("verify session: %w", err)
	}

	return g.establish(token, username), nil
}

// StartDemo persists the demo sentinel and establishes a demo session
// without any backend round trip.
func (g *Gate) StartDemo() *Session {
	if err := g.store.WriteCache(fallback.KeyToken, []byte(DemoToken)); err != nil {
		g.logger.Warn("failed persisting demo token", zap.Error(err))
	}
	return g.establish(DemoToken, "demo")
}

// Logout clears the stored token.
func (g *Gate) Logout() error {
	return g.store.Delete(fallback.KeyToken)
}

func (g *Gate) establish(token, username string) *Session {
	mode := ModeLive
	if g.forceDemo || token == DemoToken {
		mode = ModeDemo
	} else {
		g.client.SetToken(token)
	}

	return &Session{Token: token, Username: username, Mode: mode}
}
