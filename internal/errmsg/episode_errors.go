package errmsg

import "net/http"

var (
	EpisodeInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"validation failed",
	)
	EpisodeSlugTaken = NewStatusError(
		http.StatusConflict,
		"an episode with this slug already exists",
	)
	EpisodeContentNameTaken = NewStatusError(
		http.StatusConflict,
		"an episode is already linked to this content file",
	)
	EpisodeNotFound = NewStatusError(
		http.StatusNotFound,
		"episode not found",
	)
	EpisodeTopicNotFound = NewStatusError(
		http.StatusBadRequest,
		"topic does not exist",
	)
	EpisodeNoResources = NewStatusError(
		http.StatusNotFound,
		"episode has no resources",
	)
	ResourcesInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"a valid email address must be provided",
	)
	ResourcesMailUnavailable = NewStatusError(
		http.StatusServiceUnavailable,
		"sending email is not configured",
	)
	ResourcesMailFailed = NewStatusError(
		http.StatusBadGateway,
		"could not send the resources email",
	)
	TopicInvalidRequest = NewStatusError(
		http.StatusBadRequest,
		"topic titles must be provided",
	)
)

type _EpisodeInvalidRequest struct {
	StatusCode int                 `json:"statusCode" example:"400"`
	Message    string              `json:"message" example:"validation failed"`
	Errors     map[string][]string `json:"errors"`
}

type _EpisodeSlugTaken struct {
	StatusCode int    `json:"statusCode" example:"409"`
	Message    string `json:"message" example:"an episode with this slug already exists"`
}

type _EpisodeNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"episode not found"`
}

type _TopicInvalidRequest struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"topic titles must be provided"`
}

type _ResourcesInvalidRequest struct {
	StatusCode int                 `json:"statusCode" example:"400"`
	Message    string              `json:"message" example:"a valid email address must be provided"`
	Errors     map[string][]string `json:"errors"`
}

type _ResourcesMailFailed struct {
	StatusCode int    `json:"statusCode" example:"502"`
	Message    string `json:"message" example:"could not send the resources email"`
}
