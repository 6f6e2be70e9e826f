package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// PagedResponse is the envelope returned by every listing endpoint.
type PagedResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Data       any   `json:"data"`
}

// NewPagedResponse builds the listing envelope for one page of results.
// Total is the count of all matching records, ignoring skip/limit.
func NewPagedResponse(data any, total int64, p Pagination) PagedResponse {
	return PagedResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
		Data:       data,
	}
}

// JSONResponse writes data as-is with the given status code.
func JSONResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// CreatedResponse writes data with a 201 status.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// MessageResponse writes a `{"message": ...}` confirmation body.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ErrorResponse writes an `{"error": ...}` body with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithError maps an error to its HTTP status code and writes an
// `{"error": ...}` body. AppError carries its own code; anything else is a 500.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, err.Error())
}
