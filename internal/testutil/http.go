// Package testutil drives a fiber app in handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"podcastsite/internal/errmsg"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func RequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	token *string,
) (bodyBytes []byte, statusCode int) {
	headers := map[string]string{}
	if token != nil {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", *token)
	}

	bodyBytes, statusCode, _ = HeaderRequestRunner(t, app, method, path, sendBytes, headers)
	return
}

// HeaderRequestRunner sends a request with arbitrary headers and also
// returns the response headers.
func HeaderRequestRunner(
	t *testing.T,
	app *fiber.App,
	method string,
	path string,
	sendBytes []byte,
	headers map[string]string,
) (bodyBytes []byte, statusCode int, respHeaders http.Header) {
	t.Helper()

	req, err := http.NewRequest(
		method,
		path,
		bytes.NewBuffer(sendBytes),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := app.Test(req, fiber.TestConfig{Timeout: 30 * time.Second})
	require.NoError(t, err)
	defer res.Body.Close()

	statusCode = res.StatusCode
	respHeaders = res.Header

	bodyBytes, err = io.ReadAll(res.Body)
	require.NoError(t, err)

	return
}

func ResponseErrorCheck(
	t *testing.T,
	serr errmsg.StatusError,
	bodyBytes []byte,
	statusCode int,
) {
	t.Helper()

	require.Equal(t, serr.StatusCode, statusCode)

	var body struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(bodyBytes, &body)
	require.NoError(t, err)

	require.Equal(t, serr.Message, body.Message)
}

// ResponseMessageCheck asserts a 200 style {"message": ...} body.
func ResponseMessageCheck(t *testing.T, message string, bodyBytes []byte, statusCode int) {
	t.Helper()

	require.Equal(t, http.StatusOK, statusCode, string(bodyBytes))

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &body))
	require.Equal(t, message, body.Message)
}
