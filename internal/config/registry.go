package config

import "sync"

// Registry holds the resolved backend origin. It is written by the runtime
// config loader and read lazily by the API client on every call, so a write
// is visible to every request issued afterwards. Writes are last-write-wins.
type Registry struct {
	mu      sync.RWMutex
	baseURL string
}

func NewRegistry() *Registry {
	return &Registry{baseURL: DefaultAPIBaseURL}
}

func (r *Registry) BaseURL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.baseURL
}

func (r *Registry) Set(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseURL = url
}
