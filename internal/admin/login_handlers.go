package admin

import (
	"encoding/json"
	"errors"
	"strings"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/store"
	"podcastsite/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// login exchanges admin credentials for a bearer token.
// @Summary Admin login
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param credentials body models.Admin true "Username and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errmsg._AdminInvalidPayload
// @Failure 401 {object} errmsg._AdminWrongPassword
// @Router /api/admin/login [post]
func (h *handlers) login(c fiber.Ctx) error {
	var body models.Admin
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.AdminInvalidPayload)
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Password = strings.TrimSpace(body.Password)
	if body.Username == "" || body.Password == "" {
		return utils.StatusError(c, errmsg.AdminInvalidPayload)
	}

	admin, err := h.Admins.Get(c, body.Username)
	if errors.Is(err, store.ErrAdminNotFound) {
		return utils.StatusError(c, errmsg.AdminNotExists)
	}
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(admin.Password),
		[]byte(body.Password),
	) != nil {
		return utils.StatusError(c, errmsg.AdminWrongPassword)
	}

	token := admin.GenToken(h.Secret)

	h.Events.AdminLogin(admin.Username)

	admin.Password = ""

	return c.JSON(bson.M{
		"token": token,
		"admin": admin,
	})
}

// LoginResponse documents the login body.
type LoginResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}
