package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/middleware"
	"luxestore-be/internal/state"
)

// session resolves the caller's commerce state. Authenticated users map to
// their user id, anonymous callers to their device id; a request with
// neither cannot own state.
func (h *handlers) session(c *gin.Context) (*state.Session, bool) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Device-ID header"})
		return nil, false
	}
	return h.deps.Sessions.Session(id), true
}

// trySession is like session but silently reports absence instead of
// writing an error, for read paths that are merely enhanced by state.
func (h *handlers) trySession(c *gin.Context) (*state.Session, bool) {
	id, ok := middleware.Identity(c)
	if !ok {
		return nil, false
	}
	return h.deps.Sessions.Session(id), true
}
