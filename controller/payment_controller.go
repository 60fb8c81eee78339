package controller

import (
	"context"
	"math"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aminul-islam01/bistro-boss-server/model"
	"github.com/aminul-islam01/bistro-boss-server/payment"
)

type PaymentStore interface {
	DeleteCartItems(ctx context.Context, ids []string) (int64, error)
	InsertPayment(ctx context.Context, payment model.Payment) (primitive.ObjectID, error)
}

type PaymentController struct {
	Store  PaymentStore
	Bridge payment.Bridge
}

// CreateIntent mints a payment-intent client secret for the posted price.
// The price is trusted from the body, not re-derived from cart contents.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	amount := int64(math.Round(body.Price * 100))
	secret, err := pc.Bridge.CreateIntent(c.Context(), amount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create payment intent"})
	}

	return c.JSON(fiber.Map{"clientSecret": secret})
}

// Create records a completed payment. The referenced cart rows are deleted
// first, then the payment document is inserted. The two calls are not atomic;
// each result is reported separately so a partial outcome is visible.
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	var pmt model.Payment
	if err := c.BodyParser(&pmt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	deleted, err := pc.Store.DeleteCartItems(c.Context(), pmt.CartItems)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to clear cart"})
	}

	id, err := pc.Store.InsertPayment(c.Context(), pmt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to insert payment"})
	}

	return c.JSON(fiber.Map{
		"deleteResult": fiber.Map{"acknowledged": true, "deletedCount": deleted},
		"insertResult": fiber.Map{"acknowledged": true, "insertedId": id},
	})
}
