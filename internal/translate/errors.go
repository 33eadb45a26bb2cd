package translate

import "fmt"

// ConfigError means a provider credential or setting required before any
// network call is missing or invalid. No HTTP request was made.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

// TransportError wraps a network-level failure (timeout, connection
// refused) talking to a provider. Requests are never retried.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError carries a structured error payload the provider returned.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
