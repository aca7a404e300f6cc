package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error payload: a flat {"error": "..."} object
// with an optional detail block.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError writes the public payload and records the original error
// on the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status, Error: msg, Detail: detail}

	if err != nil {
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
