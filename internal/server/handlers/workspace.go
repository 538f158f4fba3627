package handlers

import (
	"sync"

	"github.com/shilohridge/backoffice/internal/export"
	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/internal/service/accounting"
	"github.com/shilohridge/backoffice/internal/service/orders"
	"github.com/shilohridge/backoffice/internal/service/sales"
	"github.com/shilohridge/backoffice/internal/session"
)

// Workspace is everything bound to one established admin session. It is
// rebuilt whole on login and discarded on logout, so the session mode every
// manager carries is fixed for the workspace's lifetime.
type Workspace struct {
	Session    *session.Session
	Registry   *manager.Registry
	Sales      *sales.Service
	Orders     *orders.Service
	Accounting *accounting.Service
	Export     *export.Service
}

// Holder guards the current workspace across concurrent requests.
type Holder struct {
	mu sync.RWMutex
	ws *Workspace
}

// Current returns the active workspace, or false when nobody is signed in.
func (h *Holder) Current() (*Workspace, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ws, h.ws != nil
}

// Set installs a freshly built workspace.
func (h *Holder) Set(ws *Workspace) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ws = ws
}

// Clear drops the active workspace.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ws = nil
}
