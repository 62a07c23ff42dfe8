package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"

	"reviewdb/models"
)

// HTTPHelper maps service errors to HTTP responses and validates request
// DTOs that carry `validate` tags.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{Validate: validator.New()}
}

// GetStatusCode resolves an error from the taxonomy to its HTTP status.
// Unclassified errors are treated as internal faults.
func (u *HTTPHelper) GetStatusCode(err error) int {
	var vErr *models.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateReview),
		errors.Is(err, models.ErrEmailMismatch),
		errors.Is(err, models.ErrBadCode):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden
	// The token exchange reports absent fields and unknown users as 404,
	// matching the documented endpoint contract.
	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrUnknownUser),
		errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the mapped status with the error message. Validation
// errors carry their field name so clients get field-level detail.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(status, gin.H{"error": gin.H{vErr.Field: vErr.Message}})
		return
	}
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// SendBadRequest reports a malformed request body or parameter.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// ValidateStruct runs the helper's standalone validator over a DTO and, on
// failure, writes the per-field 400 response. Returns false when the
// request was rejected.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, req interface{}) bool {
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error())
		return false
	}
	return true
}

// SendValidationError writes field-keyed messages for every failed tag.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		message := "failed validation on '" + err.Tag() + "'"
		if u.Translator != nil {
			message = err.Translate(u.Translator)
		}
		errorResponse[errKey] = append(errorResponse[errKey], message)
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": errorResponse})
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
}

// GeneratePaging builds the list-endpoint pagination envelope.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page int, totalRecord int64) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, page-1, limit)
		firstURL = u.GetPagingUrl(c, 1, limit)
	}
	if totalPages > page {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}
	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links": map[string]interface{}{
			"previous": prevURL,
			"next":     nextURL,
			"first":    firstURL,
			"last":     lastURL,
		},
	}
}
