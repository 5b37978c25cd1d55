package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// PointsRoutes registers the loyalty-program endpoints. Programs,
// balances and operations are per user. Offers are global: reading them
// needs no authentication, publishing and editing them does.
func PointsRoutes(app *fiber.App, svc *service.PointsService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	grp := app.Group("/points")

	grp.Post("/programs", jwt, CreatePointsProgram(svc))
	grp.Get("/programs", jwt, ListPointsPrograms(svc))
	grp.Get("/programs/:id", jwt, GetPointsProgram(svc))
	grp.Patch("/programs/:id", jwt, UpdatePointsProgram(svc))
	grp.Delete("/programs/:id", jwt, DeletePointsProgram(svc))

	grp.Post("/balances", jwt, CreatePointsBalance(svc))
	grp.Get("/balances", jwt, ListPointsBalances(svc))
	grp.Get("/balances/:id", jwt, GetPointsBalance(svc))
	grp.Patch("/balances/:id", jwt, UpdatePointsBalance(svc))
	grp.Delete("/balances/:id", jwt, DeletePointsBalance(svc))

	grp.Post("/operations", jwt, CreatePointsOperation(svc))
	grp.Get("/operations", jwt, ListPointsOperations(svc))
	grp.Get("/operations/:id", jwt, GetPointsOperation(svc))
	grp.Patch("/operations/:id", jwt, UpdatePointsOperation(svc))
	grp.Delete("/operations/:id", jwt, DeletePointsOperation(svc))

	grp.Get("/offers", ListPointsOffers(svc))
	grp.Get("/offers/:id", GetPointsOffer(svc))
	grp.Post("/offers", jwt, CreatePointsOffer(svc))
	grp.Patch("/offers/:id", jwt, UpdatePointsOffer(svc))
	grp.Delete("/offers/:id", jwt, DeletePointsOffer(svc))
}

func CreatePointsProgram(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsProgramCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		p, err := svc.CreateProgram(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Points program created", p)
	}
}

func ListPointsPrograms(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListPrograms(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points programs listed", page)
	}
}

func GetPointsProgram(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		p, err := svc.GetProgram(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points program retrieved", p)
	}
}

func UpdatePointsProgram(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsProgramUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		p, err := svc.UpdateProgram(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points program updated", p)
	}
}

func DeletePointsProgram(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteProgram(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points program deleted", nil)
	}
}

func CreatePointsBalance(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsBalanceCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		b, err := svc.CreateBalance(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Points balance created", b)
	}
}

func ListPointsBalances(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListBalances(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points balances listed", page)
	}
}

func GetPointsBalance(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		b, err := svc.GetBalance(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points balance retrieved", b)
	}
}

func UpdatePointsBalance(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsBalanceUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		b, err := svc.UpdateBalance(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points balance updated", b)
	}
}

func DeletePointsBalance(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteBalance(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points balance deleted", nil)
	}
}

func CreatePointsOperation(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsOperationCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		op, err := svc.CreateOperation(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Points operation created", op)
	}
}

func ListPointsOperations(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListOperations(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points operations listed", page)
	}
}

func GetPointsOperation(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		op, err := svc.GetOperation(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points operation retrieved", op)
	}
}

func UpdatePointsOperation(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.PointsOperationUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		op, err := svc.UpdateOperation(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points operation updated", op)
	}
}

func DeletePointsOperation(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteOperation(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points operation deleted", nil)
	}
}

func CreatePointsOffer(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.PointsOfferCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		o, err := svc.CreateOffer(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Points offer created", o)
	}
}

func ListPointsOffers(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.ListOffers(c.UserContext(), PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points offers listed", page)
	}
}

func GetPointsOffer(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := svc.GetOffer(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points offer retrieved", o)
	}
}

func UpdatePointsOffer(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.PointsOfferUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		o, err := svc.UpdateOffer(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points offer updated", o)
	}
}

func DeletePointsOffer(svc *service.PointsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteOffer(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Points offer deleted", nil)
	}
}
