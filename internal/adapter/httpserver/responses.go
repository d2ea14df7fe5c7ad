package httpserver

import (
	"fmt"
	"maps"
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body shape. Every success response
// carries "success": true plus endpoint-specific fields.
type envelope map[string]any

func writeOK(c echo.Context, fields envelope) error {
	body := envelope{"success": true}
	maps.Copy(body, fields)

	if err := c.JSON(http.StatusOK, body); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
