package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// InstallmentRoutes registers the installment-group endpoints.
func InstallmentRoutes(app *fiber.App, svc *service.InstallmentService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/installment-groups", jwt, CreateInstallmentGroup(svc))
	app.Get("/installment-groups", jwt, ListInstallmentGroups(svc))
	app.Get("/installment-groups/:id", jwt, GetInstallmentGroup(svc))
	app.Patch("/installment-groups/:id", jwt, UpdateInstallmentGroup(svc))
	app.Delete("/installment-groups/:id", jwt, DeleteInstallmentGroup(svc))
}

// CreateInstallmentGroup stores a new installment group.
func CreateInstallmentGroup(svc *service.InstallmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InstallmentGroupCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		g, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Installment group created", g)
	}
}

// ListInstallmentGroups returns a page of the user's installment groups.
func ListInstallmentGroups(svc *service.InstallmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.List(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Installment groups listed", page)
	}
}

// GetInstallmentGroup returns one installment group by id.
func GetInstallmentGroup(svc *service.InstallmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		g, err := svc.Get(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Installment group retrieved", g)
	}
}

// UpdateInstallmentGroup merges the supplied fields into a group.
func UpdateInstallmentGroup(svc *service.InstallmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.InstallmentGroupUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		g, err := svc.Update(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Installment group updated", g)
	}
}

// DeleteInstallmentGroup removes an installment group.
func DeleteInstallmentGroup(svc *service.InstallmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Installment group deleted", nil)
	}
}
