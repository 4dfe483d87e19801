package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the only error body shape the API produces: a stable
// snake_case code. Detail stays in the server log.
type Error struct {
	Code string `json:"error"`
}

func Write(c *gin.Context, status int, code string) {
	c.JSON(status, Error{Code: code})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

func NotFound(c *gin.Context, code string) {
	Write(c, http.StatusNotFound, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}
