package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aminul-islam01/bistro-boss-server/cache"
	"github.com/aminul-islam01/bistro-boss-server/controller"
	"github.com/aminul-islam01/bistro-boss-server/middleware"
	"github.com/aminul-islam01/bistro-boss-server/payment"
	"github.com/aminul-islam01/bistro-boss-server/store"
	"github.com/aminul-islam01/bistro-boss-server/token"
)

type Deps struct {
	Store  *store.Store
	Tokens *token.Service
	Bridge payment.Bridge
	Cache  *cache.Cache
}

func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth(d.Tokens)
	admin := middleware.RequireAdmin(d.Store)

	jc := &controller.JWTController{Tokens: d.Tokens}
	mc := &controller.MenuController{Store: d.Store, Cache: d.Cache}
	rc := &controller.ReviewController{Store: d.Store}
	uc := &controller.UserController{Store: d.Store}
	cc := &controller.CartController{Store: d.Store}
	pc := &controller.PaymentController{Store: d.Store, Bridge: d.Bridge}
	sc := &controller.StatsController{Store: d.Store}

	app.Post("/jwt", jc.Issue)

	app.Get("/menu", mc.List)
	app.Post("/menu", auth, admin, mc.Create)

	app.Get("/reviews", rc.List)

	app.Get("/users", auth, admin, uc.List)
	app.Post("/users", uc.Create)
	app.Patch("/users/admin/:id", uc.GrantAdmin)
	app.Get("/users/admin/:email", auth, uc.IsAdmin)

	app.Get("/carts", auth, cc.List)
	app.Post("/carts", cc.Create)
	app.Delete("/carts/:id", cc.Delete)

	app.Post("/create-payment-intent", auth, pc.CreateIntent)
	app.Post("/payments", auth, pc.Create)

	app.Get("/admin-stats", auth, admin, sc.AdminStats)
	app.Get("/order-stats", sc.OrderStats)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("bistro boss server is running")
	})
}
