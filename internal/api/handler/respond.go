package handler

import "github.com/labstack/echo/v4"

func respondOK(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, apiResponse{Success: true, Data: data, Message: message})
}

// respondError renders the failure envelope. kind is a stable machine-readable
// category ("not_found", "conflict", …); message is the human-readable detail.
func respondError(c echo.Context, code int, message, kind string) error {
	return c.JSON(code, apiResponse{Success: false, Data: nil, Message: message, Error: kind})
}
