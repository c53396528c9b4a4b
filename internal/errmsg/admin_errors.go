package errmsg

import "net/http"

var (
	AdminNotExists = NewStatusError(
		http.StatusNotFound,
		"admin does not exist",
	)
	AdminNoToken = NewStatusError(
		http.StatusUnauthorized,
		"no token has been provided",
	)
	AdminInvalidToken = NewStatusError(
		http.StatusUnauthorized,
		"token is invalid or expired",
	)
	AdminWrongPassword = NewStatusError(
		http.StatusUnauthorized,
		"username or password is incorrect",
	)
	AdminInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"username and password must be provided",
	)
)

type _AdminNoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"no token has been provided"`
}

type _AdminWrongPassword struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"username or password is incorrect"`
}

type _AdminInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"username and password must be provided"`
}
