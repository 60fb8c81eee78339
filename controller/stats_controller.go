package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aminul-islam01/bistro-boss-server/model"
)

type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenu(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	OrderStats(ctx context.Context) ([]model.OrderStat, error)
}

type StatsController struct {
	Store StatsStore
}

// AdminStats returns estimated document counts plus total revenue. The counts
// are estimates, not exact.
func (sc *StatsController) AdminStats(c *fiber.Ctx) error {
	users, err := sc.Store.CountUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to count users"})
	}
	menuItems, err := sc.Store.CountMenu(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to count menu items"})
	}
	orders, err := sc.Store.CountPayments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to count orders"})
	}
	revenues, err := sc.Store.TotalRevenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to sum revenue"})
	}

	return c.JSON(fiber.Map{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenues":  revenues,
	})
}

func (sc *StatsController) OrderStats(c *fiber.Ctx) error {
	stats, err := sc.Store.OrderStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to aggregate orders"})
	}
	if stats == nil {
		stats = []model.OrderStat{}
	}
	return c.JSON(stats)
}
