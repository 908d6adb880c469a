package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform success body: {"status": "success", payload?, message?}.
type envelope struct {
	Status  string `json:"status"`
	Payload any    `json:"payload,omitempty"`
	Message string `json:"message,omitempty"`
}

func success(c echo.Context, code int, payload any) error {
	return c.JSON(code, envelope{Status: "success", Payload: payload})
}

func successMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, envelope{Status: "success", Message: message})
}
