package main

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionCookie is the cookie carrying the anonymous session id. There is no
// login: a browser is a session, and every session owns exactly one logStore
// that vanishes when the process stops.
const sessionCookie = "session_id"

// sessionManager maps session ids to their logStore. Stores are created
// lazily on first sight of an id and never shared across sessions, which is
// the whole isolation story — per-date sums and id-based deletes can only
// ever see one session's rows.
type sessionManager struct {
	mu     sync.Mutex
	stores map[string]*logStore
}

func newSessionManager() *sessionManager {
	return &sessionManager{stores: make(map[string]*logStore)}
}

// storeFor returns the logStore owned by id, creating it on first use.
func (m *sessionManager) storeFor(id string) *logStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[id]
	if !ok {
		s = newLogStore()
		m.stores[id] = s
	}
	return s
}

// sessionMiddleware resolves the request's session id from the cookie,
// minting a fresh uuid (and setting the cookie) for first-time visitors, and
// puts the session's logStore on the context for handlers to pick up.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			// Session-scoped cookie: no max-age, gone when the browser closes,
			// matching the in-memory lifetime of the store itself.
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set("session_id", id)
		c.Set("store", h.sessions.storeFor(id))
		c.Next()
	}
}

// sessionStore pulls the request's logStore off the context. Only valid on
// routes behind sessionMiddleware.
func sessionStore(c *gin.Context) *logStore {
	return c.MustGet("store").(*logStore)
}
