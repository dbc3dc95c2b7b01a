package utils

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// FormatValidationError formats validator errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range errs {
			messages = append(messages, e.Field()+" failed on "+e.Tag())
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}

// BindAndValidate binds the request body to a struct and validates it via
// the struct's binding tags. If binding fails, it sends a BadRequest
// response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			BadRequest(c, "Validation failed: "+FormatValidationError(err))
		} else {
			BadRequest(c, "Invalid request payload")
		}
		return false
	}
	return true
}

// ValidAppointmentDate reports whether s is a well-formed zero-padded
// YYYY-MM-DD date.
func ValidAppointmentDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidAppointmentTime reports whether s is a well-formed zero-padded
// HH:MM time.
func ValidAppointmentTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// DateNotPast reports whether the zero-padded ISO date s is today or
// later. The comparison is plain string ordering, which is correct only
// because the format is fixed-width; keep the layouts in sync.
func DateNotPast(s string, now time.Time) bool {
	return s >= now.Format(dateLayout)
}
