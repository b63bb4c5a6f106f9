package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrUnauthorized            = errors.New("Invalid or expired JWT")
	ErrNotFound                = errors.New("Resource not found")
	ErrInvalidID               = errors.New("Invalid ID")
	ErrInvalidSellerID         = errors.New("Invalid Seller Id")
	ErrInvalidCategory         = errors.New("Invalid Category")
	ErrInvalidUser             = errors.New("Invalid User")
	ErrInvalidProduct          = errors.New("Invalid Product")
	ErrMissingFile             = errors.New("No image in the request")
	ErrInvalidFileType         = errors.New("invalid image type")
	ErrTooManyFiles            = errors.New("Too many images in the request")
	ErrValidation              = errors.New("Validation failed")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrUnauthorized:            ErrStatusUnauthorized,
	ErrNotFound:                ErrStatusNotFound,
	ErrInvalidID:               ErrStatusClient,
	ErrInvalidSellerID:         ErrStatusClient,
	ErrInvalidCategory:         ErrStatusClient,
	ErrInvalidUser:             ErrStatusClient,
	ErrInvalidProduct:          ErrStatusClient,
	ErrMissingFile:             ErrStatusClient,
	ErrInvalidFileType:         ErrStatusClient,
	ErrTooManyFiles:            ErrStatusClient,
	ErrValidation:              ErrStatusClient,
	ErrEmailAlreadyUsed:        ErrStatusClient,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
}

// GetErrorStatusCode maps err onto an HTTP status. Wrapped sentinels are
// recognised; anything unknown is treated as a server fault. err is never
// used as a map key since driver errors are not always hashable.
func GetErrorStatusCode(err error) int {
	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// IsClientError reports whether err maps onto a 4xx status.
func IsClientError(err error) bool {
	statusCode := GetErrorStatusCode(err)
	return statusCode >= 400 && statusCode < 500
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError carries the failing fields of a payload. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = fmt.Sprintf("%s (%s)", f.Field, f.Tag)
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(names, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
