package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roach88/registrar/internal/store"
)

// pathID parses the :id segment. On failure it writes a 400 and returns
// false.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid id %q", raw))
		return 0, false
	}
	return id, true
}

// page reads ?skip= and ?limit=. Missing values default to 0 and the
// server's default limit.
func (s *Server) page(c *gin.Context) (store.Page, bool) {
	p := store.Page{Limit: s.defaultLimit}

	if raw, ok := c.GetQuery("skip"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			badRequest(c, fmt.Sprintf("invalid skip %q: must be a non-negative integer", raw))
			return p, false
		}
		p.Offset = n
	}

	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			badRequest(c, fmt.Sprintf("invalid limit %q: must be a positive integer", raw))
			return p, false
		}
		p.Limit = n
	}

	return p, true
}
