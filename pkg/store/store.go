// Package store is the durable side of the collector: an opaque key-value
// blob store backed by diskv. Writes are fire-and-forget; each key gets its
// own single-writer queue so a burst of snapshots lands in issue order and
// the last write always wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotExist reports that no blob is stored under the requested key. A
// missing blob is the normal first-run condition, not a failure.
var ErrNotExist = errors.New("store: no blob under key")

// Persistence is the durable store contract the collector depends on.
// WriteBlob returns once the write is queued; the durable write itself is
// asynchronous and best-effort. Flush blocks until every queued write has
// landed, for shutdown and tests.
type Persistence interface {
	ReadBlob(key string) ([]byte, error)
	WriteBlob(key string, value []byte) error
	EraseBlob(key string) error
	Flush()
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		queues:   make(map[string]chan []byte),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	mu     sync.Mutex
	queues map[string]chan []byte
	wg     sync.WaitGroup
}

func (p *persistence) ReadBlob(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("store: read %q: %w", key, ErrNotExist)
		}
		return nil, fmt.Errorf("store: read %q: %v", key, err)
	}
	return val, nil
}

// WriteBlob queues value for the key's writer. The queue preserves issue
// order per key, which is the only ordering the whole-snapshot write model
// needs. Write failures are logged and swallowed; durability is best-effort.
func (p *persistence) WriteBlob(key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)

	p.mu.Lock()
	q, ok := p.queues[key]
	if !ok {
		q = make(chan []byte, 64)
		p.queues[key] = q
		go p.drain(key, q)
	}
	p.mu.Unlock()

	p.wg.Add(1)
	q <- buf
	return nil
}

func (p *persistence) drain(key string, q <-chan []byte) {
	for data := range q {
		if err := p.d.Write(key, data); err != nil {
			fmt.Fprintf(os.Stderr, "store: write %q: %v\n", key, err)
		}
		p.wg.Done()
	}
}

func (p *persistence) EraseBlob(key string) error {
	// Settle pending writes first so the erase cannot be resurrected by a
	// queued snapshot issued before it.
	p.Flush()
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %q: %v", key, err)
	}
	return nil
}

// Flush blocks until all queued writes have been attempted.
func (p *persistence) Flush() {
	p.wg.Wait()
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
