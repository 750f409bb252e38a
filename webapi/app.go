// Package webapi assembles the Fiber application.
package webapi

import (
	"github.com/gobank/ledger/infra/initializer"
	accountapi "github.com/gobank/ledger/webapi/account"
	clientapi "github.com/gobank/ledger/webapi/client"
	"github.com/gobank/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the Fiber app with middleware and all routes.
func NewApp(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})
	app.Use(requestid.New())
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bank ledger is up")
	})

	clientapi.Routes(app, deps.Clients)
	accountapi.Routes(app, deps.Accounts, deps.Statements)

	return app
}
