package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// TransactionRoutes registers the transaction endpoints.
//
// Routes:
//   - POST   /transactions          : Create a transaction.
//   - GET    /transactions          : List the user's transactions.
//   - POST   /transactions/classify : Categorize pending transactions with the LLM.
//   - GET    /transactions/:id      : Retrieve one transaction.
//   - PATCH  /transactions/:id      : Partially update one transaction.
//   - DELETE /transactions/:id      : Delete one transaction.
func TransactionRoutes(app *fiber.App, svc *service.TransactionService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/transactions", jwt, CreateTransaction(svc))
	app.Get("/transactions", jwt, ListTransactions(svc))
	app.Post("/transactions/classify", jwt, ClassifyTransactions(svc))
	app.Get("/transactions/:id", jwt, GetTransaction(svc))
	app.Patch("/transactions/:id", jwt, UpdateTransaction(svc))
	app.Delete("/transactions/:id", jwt, DeleteTransaction(svc))
}

// CreateTransaction stores a new transaction for the authenticated user.
func CreateTransaction(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.TransactionCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		tx, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// ListTransactions returns a page of the user's transactions.
func ListTransactions(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.List(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions listed", page)
	}
}

// ClassifyTransactions runs the LLM categorizer over the user's
// uncategorized transactions and reports how many were updated.
func ClassifyTransactions(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		updated, err := svc.Classify(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions classified", fiber.Map{"updated": updated})
	}
}

// GetTransaction returns one transaction by id.
func GetTransaction(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		tx, err := svc.Get(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction retrieved", tx)
	}
}

// UpdateTransaction merges the supplied fields into a transaction.
func UpdateTransaction(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.TransactionUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		tx, err := svc.Update(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", tx)
	}
}

// DeleteTransaction removes a transaction.
func DeleteTransaction(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
