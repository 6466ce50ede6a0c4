package models

// FieldError describes a single schema violation so clients can highlight the
// offending form field instead of showing one opaque string.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// APIError is the body of every non-2xx response: {message, errors?}.
type APIError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func ErrorResponse(message string) APIError {
	return APIError{Message: message}
}

func ValidationErrorResponse(message string, errs []FieldError) APIError {
	return APIError{Message: message, Errors: errs}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateCustomerResponse struct {
	Customer *Customer `json:"customer"`
	Message  string    `json:"message"`
}

type UpdateCustomerResponse struct {
	Customer *Customer `json:"customer"`
	Message  string    `json:"message"`
}
