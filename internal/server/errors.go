package server

import (
	"errors"
	"net/http"

	auditdomain "github.com/armadalink/backoffice/internal/audit/domain"
	authdomain "github.com/armadalink/backoffice/internal/auth/domain"
	customerdomain "github.com/armadalink/backoffice/internal/customer/domain"
	driverdomain "github.com/armadalink/backoffice/internal/driver/domain"
	employeedomain "github.com/armadalink/backoffice/internal/employee/domain"
	materialdomain "github.com/armadalink/backoffice/internal/material/domain"
	"github.com/armadalink/backoffice/internal/party"
	quotationdomain "github.com/armadalink/backoffice/internal/quotation/domain"
	supplierdomain "github.com/armadalink/backoffice/internal/supplier/domain"
	vehicledomain "github.com/armadalink/backoffice/internal/vehicle/domain"
	vendordomain "github.com/armadalink/backoffice/internal/vendors/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if cErr := party.AsValidationError(err); cErr != nil {
		code, message := "missing_field", "missing required field"
		if cErr.Invalid {
			code, message = "invalid_value", "invalid field value"
		}
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   cErr.Field,
					Code:    code,
					Message: message,
				},
			},
		}
	}

	if isValidationError(err) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Code:    err.Error(),
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isUnauthorizedError(err):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, customerdomain.ErrInvalidStatus),
		errors.Is(err, supplierdomain.ErrInvalidID),
		errors.Is(err, supplierdomain.ErrInvalidName),
		errors.Is(err, supplierdomain.ErrInvalidStatus),
		errors.Is(err, vendordomain.ErrInvalidID),
		errors.Is(err, vendordomain.ErrInvalidName),
		errors.Is(err, vendordomain.ErrInvalidStatus),
		errors.Is(err, employeedomain.ErrInvalidID),
		errors.Is(err, employeedomain.ErrInvalidName),
		errors.Is(err, employeedomain.ErrInvalidPhone),
		errors.Is(err, employeedomain.ErrInvalidStatus),
		errors.Is(err, driverdomain.ErrInvalidID),
		errors.Is(err, driverdomain.ErrInvalidName),
		errors.Is(err, driverdomain.ErrInvalidLicense),
		errors.Is(err, driverdomain.ErrInvalidStatus),
		errors.Is(err, vehicledomain.ErrInvalidID),
		errors.Is(err, vehicledomain.ErrInvalidPlate),
		errors.Is(err, vehicledomain.ErrInvalidType),
		errors.Is(err, vehicledomain.ErrInvalidStatus),
		errors.Is(err, materialdomain.ErrInvalidID),
		errors.Is(err, materialdomain.ErrInvalidName),
		errors.Is(err, materialdomain.ErrInvalidStatus),
		errors.Is(err, quotationdomain.ErrInvalidID),
		errors.Is(err, quotationdomain.ErrInvalidRoute),
		errors.Is(err, quotationdomain.ErrInvalidPrice),
		errors.Is(err, quotationdomain.ErrInvalidStatus),
		errors.Is(err, auditdomain.ErrInvalidPageToken),
		errors.Is(err, auditdomain.ErrInvalidTimeRange),
		errors.Is(err, auditdomain.ErrInvalidAction),
		errors.Is(err, authdomain.ErrInvalidCredentials):
		return true
	default:
		return false
	}
}

func isUnauthorizedError(err error) bool {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked),
		errors.Is(err, customerdomain.ErrMissingActor),
		errors.Is(err, supplierdomain.ErrMissingActor),
		errors.Is(err, vendordomain.ErrMissingActor),
		errors.Is(err, employeedomain.ErrMissingActor),
		errors.Is(err, driverdomain.ErrMissingActor),
		errors.Is(err, vehicledomain.ErrMissingActor),
		errors.Is(err, materialdomain.ErrMissingActor),
		errors.Is(err, quotationdomain.ErrMissingActor):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, customerdomain.ErrCodeConflict),
		errors.Is(err, supplierdomain.ErrCodeConflict),
		errors.Is(err, vendordomain.ErrCodeConflict),
		errors.Is(err, materialdomain.ErrCodeConflict),
		errors.Is(err, quotationdomain.ErrNumberConflict),
		errors.Is(err, driverdomain.ErrLicenseConflict),
		errors.Is(err, vehicledomain.ErrPlateConflict),
		errors.Is(err, authdomain.ErrUserExists):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, supplierdomain.ErrNotFound),
		errors.Is(err, vendordomain.ErrNotFound),
		errors.Is(err, employeedomain.ErrNotFound),
		errors.Is(err, driverdomain.ErrNotFound),
		errors.Is(err, vehicledomain.ErrNotFound),
		errors.Is(err, materialdomain.ErrNotFound),
		errors.Is(err, quotationdomain.ErrNotFound),
		errors.Is(err, quotationdomain.ErrCustomerGone),
		errors.Is(err, party.ErrChildNotFound),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
