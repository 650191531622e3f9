package backend

import (
	"sync"

	"pos/internal/domain/entity"
)

// Credentials is the credential cell read by every authenticated request.
// It replaces a process-wide default header: whoever holds the cell decides what is attached.
type Credentials struct {
	mu      sync.RWMutex
	session entity.Session
}

// NewCredentials creates an empty cell
func NewCredentials() *Credentials {
	return &Credentials{}
}

func (c *Credentials) Get() entity.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

func (c *Credentials) AccessToken() string {
	return c.Get().AccessToken
}

func (c *Credentials) Set(session entity.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = session
}

// Clear empties the cell and reports whether it held anything
func (c *Credentials) Clear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	had := c.session != (entity.Session{})
	c.session = entity.Session{}

	return had
}
