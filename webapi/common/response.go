// Package common holds the response envelope, request binding and
// the domain-error to HTTP status mapping shared by all handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gobank/ledger/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the envelope for every successful request.
type SuccessResponse struct {
	Success string `json:"success"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessJSON writes a success envelope with the given status code.
func SuccessJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(SuccessResponse{Success: message, Data: data})
}

// ErrorJSON writes an error envelope with the given status code.
func ErrorJSON(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorResponse{Error: detail})
}

// DomainErrorJSON maps a domain error to its status code and writes
// the error envelope.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes: 404 for
// not-found, 400 for every validation or business-rule failure, 500
// otherwise.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccounts),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrDailyLimitExceeded),
		errors.Is(err, domain.ErrInvalidCPF),
		errors.Is(err, domain.ErrDuplicateCPF),
		errors.Is(err, domain.ErrDuplicateAccountNumber):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the JSON body into T and validates it.
// On failure it writes the 400 error envelope and returns nil; the
// caller returns without writing anything further.
func BindAndValidate[T any](c *fiber.Ctx) *T {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, "invalid request data")
		return nil
	}
	if err := validate.Struct(input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, "invalid request data")
		return nil
	}
	return &input
}
