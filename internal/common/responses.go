package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FailureResponse is the error envelope the billing clients expect.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, FailureResponse{Success: false, Message: message})
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, FailureResponse{Success: false, Message: message})
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, FailureResponse{Success: false, Message: message})
}
