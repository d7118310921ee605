package errors

// Messages for the standard error responses. The numeric error field in the
// body always equals the HTTP status code.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
	MsgMethodNotAllowed = "method not allowed"
)
