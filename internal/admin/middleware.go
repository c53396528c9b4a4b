package admin

import (
	"strings"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const localsAdmin = "admin"

// AccountMiddleware requires a valid admin token, taken from a Bearer
// Authorization header or, for browser websocket upgrades that cannot set
// headers, from the authorization query parameter.
func AccountMiddleware(secret []byte) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get("Authorization"))

		var token string
		if authHeader != "" {
			tokens := strings.Fields(authHeader)
			if len(tokens) == 2 && strings.EqualFold(tokens[0], "Bearer") {
				token = tokens[1]
			}
		} else {
			token = strings.TrimSpace(c.Query("authorization"))
		}

		if token == "" {
			return utils.StatusError(c, errmsg.AdminNoToken)
		}

		var admin models.Admin
		if err := admin.ParseToken(token, secret); err != nil {
			return utils.StatusError(c, errmsg.AdminInvalidToken)
		}

		utils.SetLocals(c, localsAdmin, admin)

		return c.Next()
	}
}

func currentAdmin(c fiber.Ctx) string {
	var admin models.Admin
	if err := utils.GetLocals(c, localsAdmin, &admin); err != nil {
		return ""
	}
	return admin.Username
}
