package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aminul-islam01/bistro-boss-server/model"
)

type ReviewStore interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type ReviewController struct {
	Store ReviewStore
}

func (rc *ReviewController) List(c *fiber.Ctx) error {
	reviews, err := rc.Store.ListReviews(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch reviews"})
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return c.JSON(reviews)
}
