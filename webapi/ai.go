package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meucofre/meucofre/pkg/config"
	"github.com/meucofre/meucofre/pkg/dto"
	"github.com/meucofre/meucofre/pkg/middleware"
	"github.com/meucofre/meucofre/pkg/service"
)

// AiRoutes registers the assistant-conversation endpoints.
func AiRoutes(app *fiber.App, svc *service.AiService, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	grp := app.Group("/ai", jwt)

	grp.Post("/sessions", CreateAiSession(svc))
	grp.Get("/sessions", ListAiSessions(svc))
	grp.Get("/sessions/:id", GetAiSession(svc))
	grp.Patch("/sessions/:id", UpdateAiSession(svc))
	grp.Delete("/sessions/:id", DeleteAiSession(svc))

	grp.Post("/messages", CreateAiMessage(svc))
	grp.Get("/messages", ListAiMessages(svc))
	grp.Get("/messages/:id", GetAiMessage(svc))
	grp.Patch("/messages/:id", UpdateAiMessage(svc))
	grp.Delete("/messages/:id", DeleteAiMessage(svc))
}

func CreateAiSession(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AiSessionCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		s, err := svc.CreateSession(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Session created", s)
	}
}

func ListAiSessions(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListSessions(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Sessions listed", page)
	}
}

func GetAiSession(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		s, err := svc.GetSession(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Session retrieved", s)
	}
}

func UpdateAiSession(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AiSessionUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		s, err := svc.UpdateSession(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Session updated", s)
	}
}

func DeleteAiSession(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteSession(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Session deleted", nil)
	}
}

func CreateAiMessage(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AiMessageCreate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.UserID = userID
		m, err := svc.CreateMessage(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Message created", m)
	}
}

func ListAiMessages(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		page, err := svc.ListMessages(c.UserContext(), userID, PageQuery(c))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Messages listed", page)
	}
}

func GetAiMessage(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		m, err := svc.GetMessage(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Message retrieved", m)
	}
}

func UpdateAiMessage(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		var in dto.AiMessageUpdate
		if err := c.BodyParser(&in); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		}
		in.ID = c.Params("id")
		in.UserID = userID
		m, err := svc.UpdateMessage(c.UserContext(), in)
		if err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Message updated", m)
	}
}

func DeleteAiMessage(svc *service.AiService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return err
		}
		if err := svc.DeleteMessage(c.UserContext(), userID, c.Params("id")); err != nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Message deleted", nil)
	}
}
