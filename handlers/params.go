package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter; ok is false when it is not a
// positive integer.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
