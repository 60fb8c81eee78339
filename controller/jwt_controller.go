package controller

import (
	"github.com/gofiber/fiber/v2"
)

type TokenIssuer interface {
	Issue(claims map[string]interface{}) (string, error)
}

type JWTController struct {
	Tokens TokenIssuer
}

// Issue signs whatever claims the caller posts. The body is trusted verbatim;
// the client supplies its own email after authenticating externally.
func (jc *JWTController) Issue(c *fiber.Ctx) error {
	claims := map[string]interface{}{}
	if err := c.BodyParser(&claims); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	token, err := jc.Tokens.Issue(claims)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to sign token"})
	}

	return c.JSON(fiber.Map{"token": token})
}
