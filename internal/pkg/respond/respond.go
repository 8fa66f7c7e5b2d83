package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

// Envelope is the uniform success body: {"message": ..., "data": ...}.
// Data is an entity, an array, or null.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope is the uniform failure body.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data})
}

// NotFound writes a 404 with a "<Resource> not found" message.
func NotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorEnvelope{Error: resource + " not found"})
}

// Error writes a 500 carrying a fixed message plus the store's error text.
func Error(c *gin.Context, err error, message string) {
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: message, Details: err.Error()})
}

// BadRequest writes a 400 for malformed input (bad id, invalid JSON body).
func BadRequest(c *gin.Context, err error, message string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: message, Details: err.Error()})
}

// SuccessBody builds the success envelope for non-HTTP transports.
func SuccessBody(data interface{}, message string) Envelope {
	return Envelope{Message: message, Data: data}
}

// NotFoundBody builds the "<Resource> not found" envelope.
func NotFoundBody(resource string) ErrorEnvelope {
	return ErrorEnvelope{Error: resource + " not found"}
}

// ErrorBody builds the failure envelope carrying the store's error text.
func ErrorBody(err error, message string) ErrorEnvelope {
	return ErrorEnvelope{Error: message, Details: err.Error()}
}

// FailureBody maps a service error to a status code and envelope for
// transports that carry status codes in their payloads.
func FailureBody(err error, fallbackResource, message string) (int, interface{}) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return http.StatusNotFound, NotFoundBody(apperrors.ResourceName(err, fallbackResource))
	}
	return http.StatusInternalServerError, ErrorBody(err, message)
}

// HandleError funnels a service error into exactly one of the failure
// helpers: NotFound for missing rows, Error for everything the store
// rejected. fallbackResource names the entity when the error chain does
// not carry one.
func HandleError(c *gin.Context, err error, fallbackResource, message string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		NotFound(c, apperrors.ResourceName(err, fallbackResource))
		return
	}
	Error(c, err, message)
}
