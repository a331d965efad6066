// Package response provides JSON response helpers for handlers.
package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the canonical error envelope returned by the API.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// JSON writes data with the given status.
func JSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Created writes data with 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// OK writes data with 200.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// NoContent writes an empty 204.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Error writes the error envelope with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   c.Method() + " " + c.Path(),
	})
}

// BadRequest writes a 400 error envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound writes a 404 error envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// ServerError writes a 500 error envelope with a generic message so no
// internal detail leaks to the caller.
func ServerError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
}
