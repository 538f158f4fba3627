package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// DocumentDescriptor parameterizes a singleton content document manager
// (about page, blog, site settings).
type DocumentDescriptor[T any] struct {
	Key      string
	Path     string
	Stamp    func(*T, time.Time)
	Validate func(T) error
	Seed     func() T
}

// Document manages a singleton content document edited wholesale through a
// form, with the same demo/cache semantics as Collection.
type Document[T any] struct {
	desc   DocumentDescriptor[T]
	client *farmapi.Client
	store  fallback.Store
	sess   *session.Session
	logger *zap.Logger

	mu sync.Mutex
}

// NewDocument wires a singleton document manager for the given session.
func NewDocument[T any](desc DocumentDescriptor[T], client *farmapi.Client, store fallback.Store, sess *session.Session, logger *zap.Logger) *Document[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Document[T]{desc: desc, client: client, store: store, sess: sess, logger: logger}
}

// Get fetches the document: fallback store for demo sessions (seeded on
// first touch), remote with cache mirror for live ones.
func (d *Document[T]) Get(ctx context.Context) (T, error) {
	var zero T

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sess.Demo() {
		doc, ok := d.readLocked()
		if ok {
			return doc, nil
		}
		doc = d.desc.Seed()
		if err := d.writeLocked(doc); err != nil {
			d.logger.Warn("failed seeding demo document", zap.String("resource", d.desc.Key), zap.Error(err))
		}
		return doc, nil
	}

	remote, err := farmapi.GetOne[T](ctx, d.client, d.desc.Path)
	if err != nil {
		if farmapi.IsAuthError(err) {
			return zero, err
		}
		cached, ok := d.readLocked()
		if ok {
			d.logger.Warn("remote read failed, serving cached document",
				zap.String("resource", d.desc.Key), zap.Error(err))
			return cached, fmt.Errorf("%w: %v", ErrRemote, err)
		}
		return zero, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	if err := d.writeLocked(remote); err != nil {
		d.logger.Warn("cache mirror failed", zap.String("resource", d.desc.Key), zap.Error(err))
	}
	return remote, nil
}

// Update validates and submits a wholesale document replacement.
func (d *Document[T]) Update(ctx context.Context, doc T) (T, error) {
	var zero T

	if d.desc.Validate != nil {
		if err := d.desc.Validate(doc); err != nil {
			if errors.Is(err, ErrValidation) {
				return zero, err
			}
			return zero, fmt.Errorf("%w: %s", ErrValidation, err)
		}
	}
	if d.desc.Stamp != nil {
		d.desc.Stamp(&doc, time.Now().UTC())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sess.Demo() {
		if err := d.writeLocked(doc); err != nil {
			return zero, err
		}
		return doc, nil
	}

	stored, err := farmapi.Replace(ctx, d.client, d.desc.Path, doc)
	if err != nil {
		if farmapi.IsAuthError(err) {
			return zero, err
		}
		d.logger.Error("remote write failed", zap.String("resource", d.desc.Key), zap.Error(err))
		return zero, fmt.Errorf("failed to save %s: %w", d.desc.Key, err)
	}

	if err := d.writeLocked(stored); err != nil {
		d.logger.Warn("cache mirror failed", zap.String("resource", d.desc.Key), zap.Error(err))
	}
	return stored, nil
}

func (d *Document[T]) readLocked() (T, bool) {
	var doc T
	payload, ok, err := d.store.ReadCache(d.desc.Key)
	if err != nil || !ok {
		if err != nil {
			d.logger.Warn("fallback read failed", zap.String("resource", d.desc.Key), zap.Error(err))
		}
		return doc, false
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		d.logger.Warn("fallback payload corrupt", zap.String("resource", d.desc.Key), zap.Error(err))
		return doc, false
	}
	return doc, true
}

func (d *Document[T]) writeLocked(doc T) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.desc.Key, err)
	}
	if err := d.store.WriteCache(d.desc.Key, payload); err != nil {
		return fmt.Errorf("persist %s: %w", d.desc.Key, err)
	}
	return nil
}
