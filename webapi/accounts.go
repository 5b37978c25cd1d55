package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// AccountRoutes registers the money-account endpoints.
//
// Routes:
//   - POST   /accounts     : Create an account for the authenticated user.
//   - GET    /accounts     : List the user's accounts (cursor paginated).
//   - GET    /accounts/:id : Retrieve one account.
//   - PATCH  /accounts/:id : Partially update one account.
//   - DELETE /accounts/:id : Delete one account.
func AccountRoutes(app *fiber.App, svc *service.AccountService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/accounts", jwt, CreateAccount(svc))
	app.Get("/accounts", jwt, ListAccounts(svc))
	app.Get("/accounts/:id", jwt, GetAccount(svc))
	app.Patch("/accounts/:id", jwt, UpdateAccount(svc))
	app.Delete("/accounts/:id", jwt, DeleteAccount(svc))
}

// CreateAccount handles account creation for the authenticated user.
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AccountCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", a)
	}
}

// ListAccounts returns a page of the user's accounts.
func ListAccounts(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.List(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts listed", page)
	}
}

// GetAccount returns one account by id.
func GetAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		a, err := svc.Get(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", a)
	}
}

// UpdateAccount merges the supplied fields into an account.
func UpdateAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AccountUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		a, err := svc.Update(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account updated", a)
	}
}

// DeleteAccount removes an account.
func DeleteAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}
