package models

// ApiResponse is the envelope every HTTP endpoint answers with. Exactly one
// of Data and Error is meaningful, as Success says.
type ApiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(data any) ApiResponse {
	return ApiResponse{Success: true, Data: data}
}

// ErrorResponse carries only the message; the status code goes on the HTTP
// response itself.
func ErrorResponse(message string) ApiResponse {
	return ApiResponse{Success: false, Error: message}
}
