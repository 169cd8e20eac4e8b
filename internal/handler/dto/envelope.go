package dto

// Envelope is the uniform response shape for API endpoints. Success
// and error responses both carry it so clients parse one structure.
// Middleware rejections use the same type as handler responses.
type Envelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Data       any      `json:"data"`
	Errors     []string `json:"errors"`
}

// NewEnvelope builds a success envelope. A nil payload is rendered as
// an empty object rather than null.
func NewEnvelope(status int, message string, data any) Envelope {
	if data == nil {
		data = struct{}{}
	}
	return Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
		Errors:     []string{},
	}
}

// NewErrorEnvelope builds an error envelope. The message doubles as
// the single errors entry.
func NewErrorEnvelope(status int, message string) Envelope {
	return Envelope{
		StatusCode: status,
		Message:    message,
		Data:       struct{}{},
		Errors:     []string{message},
	}
}
