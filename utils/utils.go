package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bps-backoffice/types"
)

// CreateLogEntry captures the request/response pair of the current call for
// the async request logger.
func CreateLogEntry(c *fiber.Ctx, statusCode int) types.LogEntry {
	return types.LogEntry{
		Method:          c.Method(),
		URL:             c.OriginalURL(),
		RequestBody:     string(c.Body()),
		ResponseBody:    string(c.Response().Body()),
		RequestHeaders:  c.Request().Header.String(),
		ResponseHeaders: c.Response().Header.String(),
		StatusCode:      statusCode,
		CreatedAt:       time.Now(),
	}
}
