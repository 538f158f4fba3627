// Package manager implements the shared persistence contract behind every
// admin resource: optimistic reads and writes against the remote API with a
// transparent local fallback, and a demo session kind that never touches the
// backend at all.
package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// Record is the minimal shape every managed resource exposes.
type Record interface {
	RecordID() string
	CreatedTime() time.Time
}

// ErrValidation marks input rejected before any submission was attempted.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks a record id absent from the collection.
var ErrNotFound = errors.New("record not found")

// ErrRemote marks a backend that could not be reached; the collection is
// left at its last known-good state.
var ErrRemote = errors.New("backend unavailable")

// Invalidf builds an ErrValidation-wrapped error.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Descriptor parameterizes a Collection for one resource type.
type Descriptor[T Record] struct {
	// Key is the fallback store bucket for this resource.
	Key string
	// Path is the API collection path, e.g. "/inventory".
	Path string
	// Stamp assigns identity and timestamps to a draft before submission.
	Stamp func(*T, time.Time)
	// Validate rejects drafts missing required fields. Optional.
	Validate func(T) error
	// SearchText returns the fields matched by substring search. Optional.
	SearchText func(T) []string
	// Category returns the category filter field. Optional.
	Category func(T) string
	// Status returns the status filter field. Optional.
	Status func(T) string
	// SortByNewest orders listings by creation date descending.
	SortByNewest bool
	// Seed builds the canned demo collection served the first time a demo
	// session touches the resource. Optional.
	Seed func() []T
}

// Filter is the client-side predicate set applied after fetch.
type Filter struct {
	Query    string // substring match on designated text fields
	Category string // equality match
	Status   string // equality match
}

// Collection mediates all reads and writes for one resource.
type Collection[T Record] struct {
	desc   Descriptor[T]
	client *farmapi.Client
	store  fallback.Store
	sess   *session.Session
	logger *zap.Logger

	mu    sync.Mutex
	items []T
}

// NewCollection wires a resource manager for the given session.
func NewCollection[T Record](desc Descriptor[T], client *farmapi.Client, store fallback.Store, sess *session.Session, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{desc: desc, client: client, store: store, sess: sess, logger: logger}
}

// List fetches the full collection and applies the filter. In demo mode the
// fallback store is the primary store, seeded on first touch. In live mode a
// successful remote read is mirrored to the cache; on a network failure the
// last cached collection is served alongside ErrRemote, and an empty cache
// yields an empty listing, never the demo seed.
func (c *Collection[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil && !errors.Is(err, ErrRemote) {
		return nil, err
	}

	filtered := c.applyFilter(items, filter)
	if c.desc.SortByNewest {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedTime().After(filtered[j].CreatedTime())
		})
	}

	return filtered, err
}

// Get returns a single record from the collection.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil && !errors.Is(err, ErrRemote) {
		return zero, err
	}
	for _, item := range items {
		if item.RecordID() == id {
			return item, nil
		}
	}

	return zero, ErrNotFound
}

// Create validates and submits a new record. Demo writes appear to succeed
// without any network call; live writes append to the in-memory collection
// and refresh the fallback cache.
func (c *Collection[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T

	if err := c.validate(draft); err != nil {
		return zero, err
	}
	c.desc.Stamp(&draft, time.Now().UTC())

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		items = append(items, draft)
		if err := c.writeBucketLocked(items); err != nil {
			return zero, err
		}
		c.items = items
		return draft, nil
	}

	stored, err := farmapi.Create(ctx, c.client, c.desc.Path, draft)
	if err != nil {
		return zero, c.remoteErr("create", err)
	}

	c.items = append(c.items, stored)
	c.mirrorLocked()
	return stored, nil
}

// Update validates and submits a full-document replacement for id.
func (c *Collection[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	var zero T

	if err := c.validate(draft); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		for i := range items {
			if items[i].RecordID() == id {
				// Replacement forms usually omit created_at; the first
				// stamp fills it from the stored record so listings keep
				// their order, the second moves updated_at forward.
				c.desc.Stamp(&draft, items[i].CreatedTime())
				c.desc.Stamp(&draft, time.Now().UTC())
				items[i] = draft
				if err := c.writeBucketLocked(items); err != nil {
					return zero, err
				}
				c.items = items
				return items[i], nil
			}
		}
		return zero, ErrNotFound
	}

	stored, err := farmapi.Replace(ctx, c.client, c.desc.Path+"/"+id, draft)
	if err != nil {
		if farmapi.IsNotFound(err) {
			return zero, ErrNotFound
		}
		return zero, c.remoteErr("update", err)
	}

	c.replaceLocked(id, stored)
	c.mirrorLocked()
	return stored, nil
}

// Delete removes id from the collection. Interactive confirmation is the
// caller's concern; reaching this method means the action was confirmed.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		kept := items[:0]
		found := false
		for _, item := range items {
			if item.RecordID() == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return ErrNotFound
		}
		if err := c.writeBucketLocked(kept); err != nil {
			return err
		}
		c.items = kept
		return nil
	}

	if err := c.client.Delete(ctx, c.desc.Path+"/"+id); err != nil {
		if farmapi.IsNotFound(err) {
			return ErrNotFound
		}
		return c.remoteErr("delete", err)
	}

	c.removeLocked(id)
	c.mirrorLocked()
	return nil
}

// Patch applies a narrow server-side update at subpath (e.g. "/status") and
// the equivalent local mutation, bypassing full-document replacement.
func (c *Collection[T]) Patch(ctx context.Context, id, subpath, status string, apply func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		for i := range items {
			if items[i].RecordID() == id {
				apply(&items[i])
				if err := c.writeBucketLocked(items); err != nil {
					return err
				}
				c.items = items
				return nil
			}
		}
		return ErrNotFound
	}

	if err := c.client.PatchStatus(ctx, c.desc.Path+"/"+id+subpath, status); err != nil {
		if farmapi.IsNotFound(err) {
			return ErrNotFound
		}
		return c.remoteErr("patch", err)
	}

	for i := range c.items {
		if c.items[i].RecordID() == id {
			apply(&c.items[i])
			break
		}
	}
	c.mirrorLocked()
	return nil
}

// Mutate rewrites a single record in place through fn, used for nested
// sub-collections (health records) that append rather than replace.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		for i := range items {
			if items[i].RecordID() == id {
				fn(&items[i])
				if err := c.writeBucketLocked(items); err != nil {
					return zero, err
				}
				c.items = items
				return items[i], nil
			}
		}
		return zero, ErrNotFound
	}

	items, err := c.loadLocked(ctx)
	if err != nil && !errors.Is(err, ErrRemote) {
		return zero, err
	}
	for i := range items {
		if items[i].RecordID() != id {
			continue
		}
		updated := items[i]
		fn(&updated)
		stored, err := farmapi.Replace(ctx, c.client, c.desc.Path+"/"+id, updated)
		if err != nil {
			return zero, c.remoteErr("update", err)
		}
		c.replaceLocked(id, stored)
		c.mirrorLocked()
		return stored, nil
	}

	return zero, ErrNotFound
}

// ActiveFilters renders a filter as export query parameters so a backend
// export matches the current admin view.
func (f Filter) ActiveFilters() map[string]string {
	params := map[string]string{}
	if f.Category != "" {
		params["animal_type"] = f.Category
	}
	if f.Status != "" {
		params["status"] = f.Status
	}
	return params
}

func (c *Collection[T]) validate(draft T) error {
	if c.desc.Validate == nil {
		return nil
	}
	if err := c.desc.Validate(draft); err != nil {
		if errors.Is(err, ErrValidation) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}

// loadLocked materializes the collection: fallback store for demo sessions,
// remote (with cache mirror and cache fallback) for live ones.
func (c *Collection[T]) loadLocked(ctx context.Context) ([]T, error) {
	if c.sess.Demo() {
		items := c.demoCollectionLocked()
		c.items = items
		return items, nil
	}

	remote, err := farmapi.List[T](ctx, c.client, c.desc.Path, nil)
	if err != nil {
		if farmapi.IsAuthError(err) {
			return nil, err
		}
		cached, ok := c.readBucketLocked()
		if ok {
			c.logger.Warn("remote read failed, serving fallback cache",
				zap.String("resource", c.desc.Key), zap.Error(err))
			c.items = cached
			return cached, fmt.Errorf("%w: %v", ErrRemote, err)
		}
		c.logger.Warn("remote read failed with no cache",
			zap.String("resource", c.desc.Key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	c.items = remote
	c.mirrorLocked()
	return remote, nil
}

// demoCollectionLocked returns the demo-session collection, seeding the
// bucket on first touch.
func (c *Collection[T]) demoCollectionLocked() []T {
	items, ok := c.readBucketLocked()
	if ok {
		return items
	}

	if c.desc.Seed != nil {
		items = c.desc.Seed()
	}
	if items == nil {
		items = []T{}
	}
	if err := c.writeBucketLocked(items); err != nil {
		c.logger.Warn("failed seeding demo bucket", zap.String("resource", c.desc.Key), zap.Error(err))
	}
	return items
}

func (c *Collection[T]) readBucketLocked() ([]T, bool) {
	payload, ok, err := c.store.ReadCache(c.desc.Key)
	if err != nil || !ok {
		if err != nil {
			c.logger.Warn("fallback read failed", zap.String("resource", c.desc.Key), zap.Error(err))
		}
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		c.logger.Warn("fallback payload corrupt", zap.String("resource", c.desc.Key), zap.Error(err))
		return nil, false
	}
	return items, true
}

func (c *Collection[T]) writeBucketLocked(items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.desc.Key, err)
	}
	if err := c.store.WriteCache(c.desc.Key, payload); err != nil {
		return fmt.Errorf("persist %s: %w", c.desc.Key, err)
	}
	return nil
}

// mirrorLocked refreshes the fallback cache with the in-memory collection.
// Called only on live-session success paths.
func (c *Collection[T]) mirrorLocked() {
	if err := c.writeBucketLocked(c.items); err != nil {
		c.logger.Warn("cache mirror failed", zap.String("resource", c.desc.Key), zap.Error(err))
	}
}

func (c *Collection[T]) replaceLocked(id string, item T) {
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

func (c *Collection[T]) removeLocked(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Collection[T]) applyFilter(items []T, filter Filter) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if filter.Category != "" && (c.desc.Category == nil || c.desc.Category(item) != filter.Category) {
			continue
		}
		if filter.Status != "" && (c.desc.Status == nil || c.desc.Status(item) != filter.Status) {
			continue
		}
		if filter.Query != "" && !c.matchesQuery(item, filter.Query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Collection[T]) matchesQuery(item T, query string) bool {
	if c.desc.SearchText == nil {
		return true
	}
	needle := strings.ToLower(query)
	for _, field := range c.desc.SearchText(item) {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (c *Collection[T]) remoteErr(action string, err error) error {
	if farmapi.IsAuthError(err) {
		return err
	}
	c.logger.Error("remote write failed",
		zap.String("resource", c.desc.Key), zap.String("action", action), zap.Error(err))
	return fmt.Errorf("failed to %s %s: %w", action, c.desc.Key, err)
}
