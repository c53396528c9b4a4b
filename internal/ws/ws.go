// Package ws pushes sync reports to connected admin clients over websockets.
package ws

import (
	"encoding/json"

	"podcastsite/internal/models"

	githubws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// Upgrader upgrades HTTP connections to WebSocket connections. Admin clients
// are authenticated before the upgrade, so any origin is accepted.
var Upgrader = githubws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true
	},
}

// WriteStatus sends a status message to the websocket client.
func WriteStatus(conn *githubws.Conn, status string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    status,
		"message": message,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

// WriteReport sends a sync report to the websocket client.
func WriteReport(conn *githubws.Conn, report models.SyncReport) error {
	payload, err := json.Marshal(map[string]any{
		"type":   "report",
		"report": report,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}
