package errors

import "net/http"

var ErrValidation = &Exception{
	Message:    "invalid task data",
	StatusCode: http.StatusBadRequest,
}
