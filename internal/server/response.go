package server

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OK returns a bare success envelope.
func OK() Response {
	return Response{Status: StatusOK}
}

// OKWith returns a success envelope carrying data.
func OKWith(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Error returns an error envelope with a human-readable message.
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// ValidationError flattens validator errors into one message per field.
func ValidationError(errs validator.ValidationErrors) Response {
	msg := ""
	for i, err := range errs {
		if i > 0 {
			msg += "; "
		}
		switch err.ActualTag() {
		case "required":
			msg += fmt.Sprintf("field %s is required", err.Field())
		case "email":
			msg += fmt.Sprintf("field %s must be a valid email", err.Field())
		case "min":
			msg += fmt.Sprintf("field %s is too short", err.Field())
		case "gt", "gte", "lte":
			msg += fmt.Sprintf("field %s is out of range", err.Field())
		default:
			msg += fmt.Sprintf("field %s is not valid", err.Field())
		}
	}
	return Error(msg)
}
