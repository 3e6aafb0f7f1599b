package dto

// Envelope is the uniform response wrapper used by every /api route.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope carrying a user-facing message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
