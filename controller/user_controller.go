package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aminul-islam01/bistro-boss-server/middleware"
	"github.com/aminul-islam01/bistro-boss-server/model"
)

type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, doc bson.M) (interface{}, error)
	GrantAdmin(ctx context.Context, id string) (int64, error)
}

type UserController struct {
	Store UserStore
}

func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.Store.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(users)
}

// Create registers a user on first login, idempotent by email. On success it
// echoes the submitted document, not the stored record.
func (uc *UserController) Create(c *fiber.Ctx) error {
	var user bson.M
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	email, _ := user["email"].(string)
	existing, err := uc.Store.FindUserByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to look up user"})
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}

	if _, err := uc.Store.InsertUser(c.Context(), user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to insert user"})
	}
	return c.JSON(user)
}

// GrantAdmin promotes the user with the given id. No auth gate sits on this
// route; see DESIGN.md.
func (uc *UserController) GrantAdmin(c *fiber.Ctx) error {
	modified, err := uc.Store.GrantAdmin(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "modifiedCount": modified})
}

// IsAdmin reports whether the given email holds the admin role. A token for a
// different email gets {admin:false}, not a 403; the carts listing is the
// strict one.
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	email := c.Params("email")

	decoded, _ := c.Locals(middleware.EmailKey).(string)
	if decoded != email {
		return c.JSON(fiber.Map{"admin": false})
	}

	user, err := uc.Store.FindUserByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to look up user"})
	}
	return c.JSON(fiber.Map{"admin": user != nil && user.Role == "admin"})
}
