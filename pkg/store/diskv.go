package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence keys. Each holds one JSON-serialized collection; every key is
// independently optional on load.
const (
	KeyBookmarks   = "bookmarks"
	KeyIngredients = "ingredients"
	KeySchedules   = "schedules"
	KeyEvents      = "events"
)

// Persistence is a durable key-value store for JSON-serializable values.
// There are no ordering guarantees across keys.
type Persistence interface {
	// Read unmarshals the value for key into v. It reports whether the key
	// existed; a missing key is not an error.
	Read(key string, v any) (bool, error)
	Write(key string, v any) error
	Erase(key string) error
	// Watch emits an Event whenever a collection key changes on disk. The
	// channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string, v any) (bool, error) {
	if !p.d.Has(key) {
		return false, nil
	}
	data, err := p.d.Read(key)
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("store: parse %s: %w", key, err)
	}
	return true, nil
}

func (p *persistence) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

// The handful of collection keys live flat under the base path.
func flatTransform(string) []string { return []string{} }
