// Package httperr carries the single error response shape every endpoint
// and middleware writes.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func Write(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Status: status, Error: msg})
}

// Abort writes the response and stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{Status: status, Error: msg})
}
