package responses

import "net/http"

// APIError interface for custom API errors
type APIError interface {
	Error() string
	StatusCode() int
}

type BadRequestError struct {
	Msg string
}

func (e BadRequestError) Error() string {
	return e.Msg
}

func (BadRequestError) StatusCode() int {
	return http.StatusBadRequest
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

func (NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

type InternalServerError struct {
	Msg string
}

func (e InternalServerError) Error() string {
	return e.Msg
}

func (InternalServerError) StatusCode() int {
	return http.StatusInternalServerError
}

// ServiceUnavailableError is returned when the backing store of an endpoint
// is not configured or the game loop is gone.
type ServiceUnavailableError struct {
	Msg string
}

func (e ServiceUnavailableError) Error() string {
	return e.Msg
}

func (ServiceUnavailableError) StatusCode() int {
	return http.StatusServiceUnavailable
}
