package admin

import (
	"net"
	"net/http"
	"testing"
	"time"

	"podcastsite/internal/models"
	"podcastsite/internal/store"
	"podcastsite/internal/ws"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestSyncStreamDeliversReports(t *testing.T) {
	hub := ws.NewHub()
	app := fiber.New()
	Routes(app.Group("/api"), Deps{
		Admins:   store.MemoryAdmins{},
		Episodes: store.NewMemoryEpisodes(),
		Topics:   store.NewMemoryTopics(),
		Hub:      hub,
		Secret:   testSecret,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	t.Cleanup(func() { _ = app.Shutdown() })

	token := (&models.Admin{Username: "root"}).GenToken(testSecret)
	url := "ws://" + ln.Addr().String() + "/api/admin/sync/stream?authorization=" + token

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var started map[string]string
	require.NoError(t, conn.ReadJSON(&started))
	require.Equal(t, "info", started["type"])

	hub.Publish(models.SyncReport{
		DeliveryID: "d-1",
		Results: []models.FileResult{
			{File: models.CandidateFile{Filename: "ep1.md"}, Outcome: models.SyncUpdated, EpisodeID: 3},
		},
	})

	var msg struct {
		Type   string            `json:"type"`
		Report models.SyncReport `json:"report"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "report", msg.Type)
	require.Equal(t, "d-1", msg.Report.DeliveryID)
	require.Equal(t, int64(3), msg.Report.Results[0].EpisodeID)
}

func TestSyncStreamRejectsAnonymous(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequest(http.MethodGet, "/api/admin/sync/stream", nil)
	require.NoError(t, err)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
