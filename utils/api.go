package utils

import (
	"bytes"

	fiber "github.com/gofiber/fiber/v2"
)

// ParseJSONBody decodes the request body into out with the app's JSON decoder.
// An empty body leaves out untouched, anything that is not a JSON object fails.
func ParseJSONBody(c *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}
