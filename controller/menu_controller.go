package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aminul-islam01/bistro-boss-server/cache"
	"github.com/aminul-islam01/bistro-boss-server/model"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

type MenuStore interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	InsertMenuItem(ctx context.Context, item model.MenuItem) (primitive.ObjectID, error)
}

type MenuController struct {
	Store MenuStore
	Cache *cache.Cache
}

func (mc *MenuController) List(c *fiber.Ctx) error {
	var menu []model.MenuItem
	if mc.Cache.Get(c.Context(), menuCacheKey, &menu) {
		return c.JSON(menu)
	}

	menu, err := mc.Store.ListMenu(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch menu"})
	}
	if menu == nil {
		menu = []model.MenuItem{}
	}

	mc.Cache.Set(c.Context(), menuCacheKey, menu, menuCacheTTL)
	return c.JSON(menu)
}

func (mc *MenuController) Create(c *fiber.Ctx) error {
	var item model.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	id, err := mc.Store.InsertMenuItem(c.Context(), item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to insert menu item"})
	}

	mc.Cache.Delete(c.Context(), menuCacheKey)
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
