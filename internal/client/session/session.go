// Package session keeps the single active login of the CLI: the username and
// the key material needed to open that user's records. It lives only in
// memory and is never persisted.
package session

import (
	"sync"

	"github.com/dmitrijs2005/assessvault/internal/client/models"
)

// Session is the credential material of the logged-in user.
type Session struct {
	Username    string
	KeyMaterial models.KeyMaterial
}

// Context holds at most one Session. Begin replaces any current session and
// End clears it. The zero value is an empty, ready-to-use Context.
type Context struct {
	mu      sync.RWMutex
	current *Session
}

// Begin makes the account the active session.
func (c *Context) Begin(acc *models.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Session{Username: acc.Username, KeyMaterial: acc.KeyMaterial()}
}

// End clears the active session. It is a no-op when nobody is logged in.
func (c *Context) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Current returns a copy of the active session.
func (c *Context) Current() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return Session{}, false
	}
	return *c.current, true
}

// Active reports whether a session is in progress.
func (c *Context) Active() bool {
	_, ok := c.Current()
	return ok
}
