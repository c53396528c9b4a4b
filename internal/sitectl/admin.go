package sitectl

import (
	"context"
	"fmt"
	"strings"

	"podcastsite/internal/models"
	"podcastsite/internal/store"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AddAdmin hashes password and stores the admin, replacing the password of
// an existing one.
func AddAdmin(ctx context.Context, admins store.AdminStore, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return admins.Put(ctx, models.Admin{Username: username, Password: string(hash)})
}
