package cache

import (
	"sync"
)

// Cache holds small bits of session state shared between the capture loop
// and the command handlers.
type Cache struct {
	mu          sync.Mutex
	lastContent string
	playback    int64
	hasPlayback bool
}

func NewCache() *Cache {
	return &Cache{}
}

// SetLastContent remembers the most recently captured text so repeated
// takes of the same phrase can be detected without a database round trip.
func (c *Cache) SetLastContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastContent = content
}

func (c *Cache) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastContent
}

func (c *Cache) SetPlayback(number int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playback = number
	c.hasPlayback = true
}

func (c *Cache) Playback() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playback, c.hasPlayback
}

func (c *Cache) ClearPlayback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playback = 0
	c.hasPlayback = false
}
