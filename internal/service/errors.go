package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/pkg/payment"
)

var ErrUnauthenticated = errors.New("no authenticated session")

// ValidationError means the caller sent missing or malformed input. It is
// returned before any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError is raised by the checkout provider client.
type ProviderError = payment.ProviderError

// LookupError covers every way a read-only lookup can fail. Public is the
// fixed message shown to clients; Err is only ever logged.
type LookupError struct {
	Resource string
	Public   string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %v", e.Resource, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// StatusFor maps an error kind to the HTTP status the client sees.
// Not-found and unauthenticated lookups intentionally share the 500 of a
// backend failure.
func StatusFor(err error) int {
	var (
		verr *ValidationError
		perr *ProviderError
		lerr *LookupError
		ferr *fiber.Error
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &perr):
		return http.StatusInternalServerError
	case errors.As(err, &lerr):
		return http.StatusInternalServerError
	case errors.As(err, &ferr):
		return ferr.Code
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that is safe to show to the caller.
func PublicMessage(err error) string {
	var (
		verr *ValidationError
		lerr *LookupError
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &lerr):
		return lerr.Public
	case errors.As(err, &ferr) && ferr.Code < http.StatusInternalServerError:
		return ferr.Message
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}
