package ws

import (
	"context"
	"errors"
	"sync"

	"podcastsite/internal/models"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var errClientClosed = errors.New("websocket closed by client")

// ReportWriter sends messages over a single websocket connection.
type ReportWriter struct {
	conn *websocket.Conn
}

func (w *ReportWriter) WriteReport(report models.SyncReport) error {
	if err := WriteReport(w.conn, report); err != nil {
		return errClientClosed
	}
	return nil
}

func (w *ReportWriter) WriteStatus(level, message string) {
	_ = WriteStatus(w.conn, level, message)
}

// StreamWebSocket upgrades to WebSocket and streams using the provided streamer function.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, writer *ReportWriter) error) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		writer := &ReportWriter{conn: conn}

		// the stream ends when the client goes away
		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			<-closed
			cancel()
		}()

		err := streamer(streamCtx, writer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errClientClosed) {
			_ = WriteStatus(conn, "error", "sync stream failed")
		}

		_ = WriteStatus(conn, "info", "sync stream ended")
	})
}
