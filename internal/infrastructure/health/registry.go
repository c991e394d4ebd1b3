// Package health evaluates named readiness probes against the service's
// optional backing stores.
package health

import (
	"context"
	"sync"
	"time"
)

// Probe returns an error when the dependency is unusable.
type Probe func(ctx context.Context) error

type Registry struct {
	mu      sync.RWMutex
	probes  map[string]Probe
	timeout time.Duration
}

type Status struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

type Result struct {
	Checks map[string]Status `json:"checks"`
}

// Healthy is true when every check passed.
func (r Result) Healthy() bool {
	for _, s := range r.Checks {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// NewRegistry bounds each probe by timeout (2s when zero).
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Registry{probes: map[string]Probe{}, timeout: timeout}
}

func (r *Registry) Register(name string, p Probe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = p
}

// Evaluate runs the probes concurrently.
func (r *Registry) Evaluate(ctx context.Context) Result {
	r.mu.RLock()
	probes := make(map[string]Probe, len(r.probes))
	for name, p := range r.probes {
		probes[name] = p
	}
	r.mu.RUnlock()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]Status, len(probes))
	)
	for name, p := range probes {
		wg.Add(1)
		go func(name string, p Probe) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			start := time.Now()
			err := p(pctx)
			st := Status{Healthy: err == nil, Latency: time.Since(start).String()}
			if err != nil {
				st.Error = err.Error()
			}
			mu.Lock()
			checks[name] = st
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()
	return Result{Checks: checks}
}

// Self always succeeds; it proves the process is serving.
func Self(context.Context) error { return nil }
