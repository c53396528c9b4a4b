package errmsg

import "net/http"

func InternalServerError(err error) StatusError {
	return NewStatusError(
		http.StatusInternalServerError,
		"internal server error: "+err.Error(),
	)
}

var (
	UnsupportedLocale = NewStatusError(
		http.StatusNotFound,
		"unsupported locale",
	)
)

type _InternalServerError struct {
	StatusCode int    `json:"statusCode" example:"500"`
	Message    string `json:"message" example:"internal server error: connection refused"`
}
