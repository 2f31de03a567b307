// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func Respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: &message})
}
