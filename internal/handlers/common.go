package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careflow/homecare-api/internal/httperr"
)

// pathID coerces the named path parameter to an id. On failure it writes
// a 400 and reports false; handlers just return.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 0 {
		httperr.BadRequest(c, "invalid_id")
		return 0, false
	}
	return uint(n), true
}
