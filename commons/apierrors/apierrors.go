package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/commons/enums"
)

// ApiError pairs an HTTP status with a stable code and a client-safe message.
type ApiError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Code + ": " + e.Message
}

func New(status int, code, message string) *ApiError {
	return &ApiError{Status: status, Code: code, Message: message}
}

func BadRequest(code, message string) *ApiError {
	return New(http.StatusBadRequest, code, message)
}

func Conflict(code, message string) *ApiError {
	return New(http.StatusConflict, code, message)
}

func Unauthorized() *ApiError {
	return New(http.StatusUnauthorized, enums.UNAUTHORIZED, "invalid or missing admin key")
}

func Storage() *ApiError {
	return New(http.StatusInternalServerError, enums.STORAGE_ERROR, "could not save your submission, please try again later")
}

// From returns err as an *ApiError, falling back to a generic 500 so internal
// detail never reaches the client.
func From(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, enums.INTERNAL_ERROR, "internal server error")
}

// Abort writes err as a JSON response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	e := From(err)
	c.AbortWithStatusJSON(e.Status, gin.H{
		"success": false,
		"error":   e.Code,
		"message": e.Message,
	})
}
