// Package client exposes the client registration endpoints.
package client

import (
	"time"

	clientsvc "github.com/gobank/ledger/pkg/service/client"
	"github.com/gobank/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the client endpoints:
//   - POST /clients      : register a new client
//   - GET  /clients/:cpf : fetch a client by CPF
func Routes(app *fiber.App, clients *clientsvc.Service) {
	app.Post("/clients", Create(clients))
	app.Get("/clients/:cpf", Get(clients))
}

// Create returns the handler for registering a client.
func Create(clients *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[CreateClientRequest](c)
		if input == nil {
			return nil
		}
		birthDate, err := time.Parse(birthDateLayout, input.BirthDate)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "birth_date must be in DD/MM/YYYY format")
		}
		registered, err := clients.Register(c.Context(), clientsvc.RegisterInput{
			Name:          input.Name,
			BirthDate:     birthDate,
			CPF:           input.CPF,
			StreetAddress: input.StreetAddress,
			StreetNumber:  input.StreetNumber,
			Neighborhood:  input.Neighborhood,
			City:          input.City,
			StateCode:     input.StateCode,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Client registered", ToClientDTO(registered))
	}
}

// Get returns the handler for fetching a client by CPF.
func Get(clients *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := clients.GetByCPF(c.Context(), c.Params("cpf"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Client retrieved", ToClientDTO(found))
	}
}
