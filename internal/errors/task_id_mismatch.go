package errors

import "net/http"

var ErrTaskIDMismatch = &Exception{
	Message:    "task id mismatch",
	StatusCode: http.StatusBadRequest,
}
