package utils

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// GetLocals decodes a value stored with SetLocals into result.
func GetLocals(c fiber.Ctx, name string, result any) error {
	raw, ok := c.Locals(name).(string)
	if !ok {
		return fmt.Errorf("locals %q not set", name)
	}
	return json.Unmarshal([]byte(raw), result)
}

// SetLocals stores data as JSON so handlers never share the caller's pointer.
func SetLocals(c fiber.Ctx, name string, data any) {
	bytes, _ := json.Marshal(data)
	c.Locals(name, string(bytes))
}
