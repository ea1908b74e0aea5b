package app

import "fmt"

// DomainError carries an HTTP status alongside the code and message that
// fill the error envelope. mapError passes it through unchanged, so the
// service layer uses it for failures the store sentinels do not cover,
// like an unconfigured history backend or an unknown commit hash.
type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// domainError is shorthand for the service layer's error returns.
func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}
