package models

type Response struct {
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Başarılı response için helper
func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

// ErrorResponse renders as {"error": "..."}; callers pass a fixed message,
// never the underlying error text.
func ErrorResponse(err string) Response {
	return Response{
		Error: err,
	}
}
