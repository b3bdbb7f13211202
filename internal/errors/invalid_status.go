package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "invalid status",
	StatusCode: http.StatusBadRequest,
}
