package response

import (
	"errors"
	"net/http"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/domain/report"
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		NotFound(w, "Employee is inactive")
	case errors.Is(err, report.ErrStoreUnavailable):
		InternalServerError(w, "Record store unavailable")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
