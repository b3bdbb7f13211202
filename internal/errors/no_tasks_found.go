package errors

import "net/http"

var ErrNoTasksFound = &Exception{
	Message:    "No tasks found.",
	StatusCode: http.StatusNotFound,
}
