package budget

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Cache is the durable local copy of per-team budget totals, one JSON file
// for all teams. The store is authoritative; the cache exists so the last
// known total can be shown when a budget read degrades.
type Cache struct {
	mu   sync.Mutex
	path string
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) load() map[string]float64 {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]float64{}
	}
	totals := map[string]float64{}
	if err := json.Unmarshal(data, &totals); err != nil {
		// corrupted cache reads as empty, same policy as the session file
		return map[string]float64{}
	}
	return totals
}

func (c *Cache) flush(totals map[string]float64) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}

// Total returns the cached total for a team, zero if absent.
func (c *Cache) Total(teamID string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()[teamID]
}

// Set records the authoritative total reported by the store.
func (c *Cache) Set(teamID string, total float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	totals := c.load()
	totals[teamID] = total
	return c.flush(totals)
}
