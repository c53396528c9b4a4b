package admin

import (
	"podcastsite/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// syncStream pushes every sync report to the client as it is produced.
// @Summary Stream sync reports
// @Description Websocket. Browsers pass the token as ?authorization=<token>.
// @Tags Admin Sync
// @Security AdminAuth
// @Param authorization query string false "Admin token"
// @Failure 401 {object} errmsg._AdminNoToken
// @Router /api/admin/sync/stream [get]
func (h *handlers) syncStream(c fiber.Ctx) error {
	return ws.StreamWebSocket(c, h.Hub.Stream)
}
