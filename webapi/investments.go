package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// InvestmentRoutes registers the investment endpoints. Accounts,
// transactions, positions and earnings each get the full CRUD set under
// the /investments prefix.
func InvestmentRoutes(app *fiber.App, svc *service.InvestmentService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	grp := app.Group("/investments", jwt)

	grp.Post("/accounts", CreateInvestmentAccount(svc))
	grp.Get("/accounts", ListInvestmentAccounts(svc))
	grp.Get("/accounts/:id", GetInvestmentAccount(svc))
	grp.Patch("/accounts/:id", UpdateInvestmentAccount(svc))
	grp.Delete("/accounts/:id", DeleteInvestmentAccount(svc))

	grp.Post("/transactions", CreateInvestmentTransaction(svc))
	grp.Get("/transactions", ListInvestmentTransactions(svc))
	grp.Get("/transactions/:id", GetInvestmentTransaction(svc))
	grp.Patch("/transactions/:id", UpdateInvestmentTransaction(svc))
	grp.Delete("/transactions/:id", DeleteInvestmentTransaction(svc))

	grp.Post("/positions", CreateInvestmentPosition(svc))
	grp.Get("/positions", ListInvestmentPositions(svc))
	grp.Get("/positions/:id", GetInvestmentPosition(svc))
	grp.Patch("/positions/:id", UpdateInvestmentPosition(svc))
	grp.Delete("/positions/:id", DeleteInvestmentPosition(svc))

	grp.Post("/earnings", CreateInvestmentEarning(svc))
	grp.Get("/earnings", ListInvestmentEarnings(svc))
	grp.Get("/earnings/:id", GetInvestmentEarning(svc))
	grp.Patch("/earnings/:id", UpdateInvestmentEarning(svc))
	grp.Delete("/earnings/:id", DeleteInvestmentEarning(svc))
}

func CreateInvestmentAccount(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentAccountCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		a, err := svc.CreateAccount(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Investment account created", a)
	}
}

func ListInvestmentAccounts(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListAccounts(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment accounts listed", page)
	}
}

func GetInvestmentAccount(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		a, err := svc.GetAccount(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment account retrieved", a)
	}
}

func UpdateInvestmentAccount(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentAccountUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		a, err := svc.UpdateAccount(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment account updated", a)
	}
}

func DeleteInvestmentAccount(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteAccount(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment account deleted", nil)
	}
}

func CreateInvestmentTransaction(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentTransactionCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		tx, err := svc.CreateTransaction(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Investment transaction created", tx)
	}
}

func ListInvestmentTransactions(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListTransactions(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment transactions listed", page)
	}
}

func GetInvestmentTransaction(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		tx, err := svc.GetTransaction(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment transaction retrieved", tx)
	}
}

func UpdateInvestmentTransaction(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentTransactionUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		tx, err := svc.UpdateTransaction(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment transaction updated", tx)
	}
}

func DeleteInvestmentTransaction(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteTransaction(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Investment transaction deleted", nil)
	}
}

func CreateInvestmentPosition(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentPositionCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		p, err := svc.CreatePosition(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Position created", p)
	}
}

func ListInvestmentPositions(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListPositions(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Positions listed", page)
	}
}

func GetInvestmentPosition(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		p, err := svc.GetPosition(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Position retrieved", p)
	}
}

func UpdateInvestmentPosition(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentPositionUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		p, err := svc.UpdatePosition(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Position updated", p)
	}
}

func DeleteInvestmentPosition(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeletePosition(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Position deleted", nil)
	}
}

func CreateInvestmentEarning(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentEarningCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		e, err := svc.CreateEarning(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Earning created", e)
	}
}

func ListInvestmentEarnings(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListEarnings(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Earnings listed", page)
	}
}

func GetInvestmentEarning(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		e, err := svc.GetEarning(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Earning retrieved", e)
	}
}

func UpdateInvestmentEarning(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InvestmentEarningUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		e, err := svc.UpdateEarning(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Earning updated", e)
	}
}

func DeleteInvestmentEarning(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteEarning(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Earning deleted", nil)
	}
}
