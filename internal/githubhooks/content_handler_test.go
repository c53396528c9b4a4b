package githubhooks

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"podcastsite/internal/contentsync"
	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type syncRecorder struct {
	mu      sync.Mutex
	batches []contentsync.Batch
}

func (r *syncRecorder) Process(_ context.Context, batch contentsync.Batch) models.SyncReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch)
	return models.SyncReport{DeliveryID: batch.DeliveryID}
}

func newTestApp(secret string) (*fiber.App, *syncRecorder) {
	rec := &syncRecorder{}
	app := fiber.New()
	Routes(app.Group("/api"), NewContentHandler(secret, "main", rec))
	return app, rec
}

func mustEncodeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func send(t *testing.T, app *fiber.App, body []byte, headers map[string]string) ([]byte, int) {
	t.Helper()
	resp, status, _ := testutil.HeaderRequestRunner(t, app, http.MethodPost, "/api/sync-content", body, headers)
	return resp, status
}

func signedHeaders(body []byte, event string) map[string]string {
	return map[string]string{
		signatureHeader: ComputeSignature(testSecret, body),
		eventHeader:     event,
		deliveryHeader:  "delivery-123",
	}
}

func pushBody(t *testing.T, ref string, added ...string) []byte {
	return mustEncodeJSON(t, map[string]any{
		"ref":   ref,
		"after": "abc123",
		"commits": []map[string]any{
			{"id": "abc123", "added": added, "modified": []string{}},
		},
	})
}

func TestSyncContentProcessesMainPush(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := pushBody(t, "refs/heads/main", "episodes/ep1.md", "README.md")

	resp, status := send(t, app, body, signedHeaders(body, "push"))
	testutil.ResponseMessageCheck(t, MsgSyncCompleted, resp, status)

	require.Len(t, rec.batches, 1)
	batch := rec.batches[0]
	require.Equal(t, "delivery-123", batch.DeliveryID)
	require.Equal(t, "refs/heads/main", batch.Ref)
	require.Equal(t, "abc123", batch.After)
	require.Equal(t, []models.CandidateFile{
		{Filename: "ep1.md", Path: "episodes/ep1.md", Status: models.ChangeAdded},
	}, batch.Files)
}

func TestSyncContentIgnoresOtherBranches(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := pushBody(t, "refs/heads/develop", "episodes/ep1.md")

	resp, status := send(t, app, body, signedHeaders(body, "push"))
	testutil.ResponseMessageCheck(t, MsgIgnoredBranch, resp, status)
	require.Empty(t, rec.batches)
}

func TestSyncContentIgnoresOtherEvents(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := []byte(`{"zen":"Keep it logically awesome.","hook_id":1}`)

	resp, status := send(t, app, body, signedHeaders(body, "ping"))
	testutil.ResponseMessageCheck(t, MsgIgnoredEvent, resp, status)
	require.Empty(t, rec.batches)
}

func TestSyncContentRejectsSignatures(t *testing.T) {
	body := pushBody(t, "refs/heads/main", "episodes/ep1.md")

	cases := []struct {
		name    string
		secret  string
		headers map[string]string
		want    errmsg.StatusError
	}{
		{
			name:    "missing",
			secret:  testSecret,
			headers: map[string]string{eventHeader: "push"},
			want:    errmsg.GitHubSignatureMissing,
		},
		{
			name:    "malformed",
			secret:  testSecret,
			headers: map[string]string{signatureHeader: "sha1=abc", eventHeader: "push"},
			want:    errmsg.GitHubSignatureMalformed,
		},
		{
			name:    "mismatch",
			secret:  testSecret,
			headers: map[string]string{signatureHeader: ComputeSignature("wrong", body), eventHeader: "push"},
			want:    errmsg.GitHubSignatureInvalid,
		},
		{
			name:    "secret not configured",
			secret:  "",
			headers: map[string]string{signatureHeader: ComputeSignature("", body), eventHeader: "push"},
			want:    errmsg.GitHubSignatureInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, rec := newTestApp(tc.secret)

			resp, status := send(t, app, body, tc.headers)
			testutil.ResponseErrorCheck(t, tc.want, resp, status)
			require.Empty(t, rec.batches)
		})
	}
}

func TestSyncContentVerifiesExactBytes(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := pushBody(t, "refs/heads/main", "episodes/ep1.md")
	headers := signedHeaders(body, "push")

	// same JSON document, different bytes
	reformatted := append([]byte(" "), body...)

	resp, status := send(t, app, reformatted, headers)
	testutil.ResponseErrorCheck(t, errmsg.GitHubSignatureInvalid, resp, status)
	require.Empty(t, rec.batches)
}

func TestSyncContentRejectsBadPayloads(t *testing.T) {
	cases := map[string][]byte{
		"not json":    []byte("ref=refs/heads/main"),
		"missing ref": []byte(`{"after":"abc","commits":[]}`),
		"blank ref":   []byte(`{"ref":"  ","commits":[]}`),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			app, rec := newTestApp(testSecret)

			resp, status := send(t, app, body, signedHeaders(body, "push"))
			testutil.ResponseErrorCheck(t, errmsg.GitHubInvalidPayload, resp, status)
			require.Empty(t, rec.batches)
		})
	}
}

func TestSyncContentRequiresEventHeader(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := pushBody(t, "refs/heads/main", "episodes/ep1.md")

	resp, status := send(t, app, body, map[string]string{
		signatureHeader: ComputeSignature(testSecret, body),
	})
	testutil.ResponseErrorCheck(t, errmsg.GitHubEventMissing, resp, status)
	require.Empty(t, rec.batches)
}

func TestSyncContentAcceptsPushWithoutEpisodeFiles(t *testing.T) {
	app, rec := newTestApp(testSecret)
	body := pushBody(t, "refs/heads/main", "README.md")

	resp, status := send(t, app, body, signedHeaders(body, "push"))
	testutil.ResponseMessageCheck(t, MsgSyncCompleted, resp, status)

	require.Len(t, rec.batches, 1)
	require.Empty(t, rec.batches[0].Files)
}
