package pkg

// AppError is the boundary error carried from handlers to the HTTP
// response: a stable machine code, a human-readable message and the
// HTTP status to report. Err keeps the underlying cause for logging
// only; it is never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON error body returned to clients.
type HTTPError struct {
	Error string `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
