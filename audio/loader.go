// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc retrieves the raw bytes behind a source identifier.
type FetchFunc func(ctx context.Context, id string) ([]byte, error)

// Loader memoizes decoded sample sets per source identifier.
//
// Concurrent Load calls for the same identifier share one in-flight
// fetch+decode; later callers observe the same outcome as the first.
// Successful decodes are cached for the lifetime of the Loader (or
// until Reset). Failures are not cached, so a transient fetch error
// does not poison the identifier.
type Loader struct {
	fetch FetchFunc
	chain *Chain

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*SampleSet
}

// NewLoader wires a byte retriever to a decode chain.
func NewLoader(fetch FetchFunc, chain *Chain) *Loader {
	return &Loader{
		fetch: fetch,
		chain: chain,
		cache: make(map[string]*SampleSet),
	}
}

// Load returns the decoded first channel for id, fetching and decoding
// it at most once per cached lifetime. A fetch failure is reported as
// ErrTransport; a decode failure carries the fallback parser's error.
func (l *Loader) Load(ctx context.Context, id string) (*SampleSet, error) {
	l.mu.RLock()
	set, ok := l.cache[id]
	l.mu.RUnlock()
	if ok {
		return set, nil
	}

	v, err, _ := l.group.Do(id, func() (any, error) {
		// A previous winner may have populated the cache between the
		// read above and entering the group.
		l.mu.RLock()
		set, ok := l.cache[id]
		l.mu.RUnlock()
		if ok {
			return set, nil
		}

		data, err := l.fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}

		set, err = l.chain.Decode(data)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[id] = set
		l.mu.Unlock()

		return set, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*SampleSet), nil
}

// Forget drops a single cached identifier.
func (l *Loader) Forget(id string) {
	l.mu.Lock()
	delete(l.cache, id)
	l.mu.Unlock()
}

// Reset drops every cached entry. Callers invoke this after a dataset
// rescan, when the set of valid identifiers may have changed.
func (l *Loader) Reset() {
	l.mu.Lock()
	l.cache = make(map[string]*SampleSet)
	l.mu.Unlock()
}

// Cached reports how many identifiers currently have a decoded result.
func (l *Loader) Cached() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}
