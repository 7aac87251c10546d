package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressly/ressly-be/pkg/apperrors"
)

// ErrorResponse represents a standard error payload returned by the API
type ErrorResponse struct {
	Error string `json:"error" example:"Reporte no encontrado"`
	Code  string `json:"code,omitempty" example:"REPORT_NOT_FOUND"`
}

// SuccessResponse represents a standard success payload
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// ListResponse represents a counted list payload
type ListResponse struct {
	Status string      `json:"status" example:"success"`
	Count  int         `json:"count" example:"7"`
	Data   interface{} `json:"data"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// List sends a 200 OK response with a count alongside the items
func List(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  count,
		Data:   data,
	})
}

// Error sends an error response with an explicit status code
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, code, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, code, message string) {
	Error(c, http.StatusConflict, code, message)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, code, message string) {
	Error(c, http.StatusInternalServerError, code, message)
}

// FromError maps an application error to its contractual status code, stable
// code, and user-facing message. Handlers call this on every service failure
// so the taxonomy lives in one place.
func FromError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	code := apperrors.CodeOf(err)
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	Error(c, apperrors.HTTPStatus(kind), code, apperrors.MessageOf(err))
}
