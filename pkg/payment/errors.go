package payment

import "fmt"

// ProviderError wraps any failure talking to the checkout provider: network
// errors, auth failures, rejected products, rate limits.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
