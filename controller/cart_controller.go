package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aminul-islam01/bistro-boss-server/middleware"
	"github.com/aminul-islam01/bistro-boss-server/model"
)

type CartStore interface {
	ListCartItems(ctx context.Context, email string) ([]model.CartItem, error)
	InsertCartItem(ctx context.Context, item model.CartItem) (primitive.ObjectID, error)
	DeleteCartItem(ctx context.Context, id string) (int64, error)
}

type CartController struct {
	Store CartStore
}

// List returns the cart rows for the email in the query string. No email
// yields an empty list; an email other than the token's is forbidden.
func (cc *CartController) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]model.CartItem{})
	}

	decoded, _ := c.Locals(middleware.EmailKey).(string)
	if email != decoded {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "forbidden access"})
	}

	items, err := cc.Store.ListCartItems(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch cart"})
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return c.JSON(items)
}

func (cc *CartController) Create(c *fiber.Ctx) error {
	var item model.CartItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	id, err := cc.Store.InsertCartItem(c.Context(), item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to insert cart item"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

func (cc *CartController) Delete(c *fiber.Ctx) error {
	deleted, err := cc.Store.DeleteCartItem(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete cart item"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}
