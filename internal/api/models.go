package api

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms an operation that returns no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}
