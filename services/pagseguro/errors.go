package pagseguro

import "fmt"

// ValidationError reports malformed or missing caller input: blank
// credentials, an unset reference, an empty product list.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "pagseguro: " + e.Message
}

// AuthorizationError reports that the gateway rejected the lookup code
// for the configured credentials.
type AuthorizationError struct {
	Code string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("pagseguro: gateway rejected lookup code %q", e.Code)
}

// ParseError reports a response body that is not the expected transaction
// XML document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pagseguro: invalid transaction response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TransportError reports a connection-level failure and carries the
// underlying transport error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pagseguro: connection failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
