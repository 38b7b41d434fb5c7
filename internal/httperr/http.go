package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func WriteStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	WriteStatus(c, http.StatusBadRequest, code, message)
}

func NotFoundStatus(c *gin.Context, code, message string) {
	WriteStatus(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	WriteStatus(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	WriteStatus(c, http.StatusUnauthorized, code, message)
}

// Respond maps an error's Kind to an HTTP status. Unknown errors become 500s
// without leaking their message.
func Respond(c *gin.Context, err error) {
	switch KindOf(err) {
	case KindValidation:
		BadRequest(c, CodeOf(err), err.Error())
	case KindNotFound:
		NotFoundStatus(c, CodeOf(err), err.Error())
	case KindRead, KindWrite:
		Internal(c, CodeOf(err), "storage failure")
	default:
		Internal(c, "internal_error", "unexpected failure")
	}
}
