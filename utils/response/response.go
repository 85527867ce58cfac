package response

import (
	"github.com/gofiber/fiber/v2"
)

// Fixed client-facing messages
const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidAmount  = "Amount must be a positive number"
	MsgInvalidBody    = "Invalid request body"
	MsgInternalServer = "Internal server error"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse carries the identifier of a freshly inserted row
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// StatusResponse is returned by the health endpoint
type StatusResponse struct {
	Status string `json:"status"`
}

// OK returns a 200 response with data as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created returns a 201 Created response with the new row id
func Created(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusCreated).JSON(CreatedResponse{ID: id})
}

// Error returns an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{Error: message})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}
