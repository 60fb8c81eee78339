package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aminul-islam01/bistro-boss-server/middleware"
	"github.com/aminul-islam01/bistro-boss-server/model"
	"github.com/aminul-islam01/bistro-boss-server/token"
)

func newStatsApp(fs *fakeStore) *fiber.App {
	app := fiber.New()
	auth := middleware.RequireAuth(token.NewService(testSecret))
	admin := middleware.RequireAdmin(fs)
	sc := &StatsController{Store: fs}

	app.Get("/admin-stats", auth, admin, sc.AdminStats)
	app.Get("/order-stats", sc.OrderStats)
	return app
}

func adminOnly() []model.User {
	return []model.User{{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: "admin"}}
}

func TestAdminStatsZeroPayments(t *testing.T) {
	fs := &fakeStore{users: adminOnly()}
	app := newStatsApp(fs)

	resp, body := doJSON(t, app, "GET", "/admin-stats", nil, issueToken(t, "admin@b.com"))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(0), body["orders"])
	assert.Equal(t, float64(0), body["revenues"])
	assert.Equal(t, float64(1), body["users"])
}

func TestAdminStatsWithPayments(t *testing.T) {
	fs := &fakeStore{
		users: adminOnly(),
		menu: []model.MenuItem{
			{ID: primitive.NewObjectID(), Name: "Soup", Category: "starter", Price: 5},
			{ID: primitive.NewObjectID(), Name: "Pasta", Category: "main", Price: 12.5},
		},
		payments: []model.Payment{
			{ID: primitive.NewObjectID(), Price: 10},
			{ID: primitive.NewObjectID(), Price: 7.5},
		},
	}
	app := newStatsApp(fs)

	resp, body := doJSON(t, app, "GET", "/admin-stats", nil, issueToken(t, "admin@b.com"))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), body["menuItems"])
	assert.Equal(t, float64(2), body["orders"])
	assert.Equal(t, 17.5, body["revenues"])
}

func TestAdminStatsGates(t *testing.T) {
	fs := &fakeStore{users: []model.User{{ID: primitive.NewObjectID(), Email: "plain@b.com"}}}
	app := newStatsApp(fs)

	resp, _ := doJSON(t, app, "GET", "/admin-stats", nil, "")
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/admin-stats", nil, issueToken(t, "plain@b.com"))
	assert.Equal(t, 403, resp.StatusCode)
}

func TestOrderStatsPublic(t *testing.T) {
	fs := &fakeStore{orderStats: []model.OrderStat{
		{Category: "main", Count: 3, Total: 37.5},
		{Category: "starter", Count: 1, Total: 5},
	}}
	app := newStatsApp(fs)

	resp, rows := doJSONList(t, app, "GET", "/order-stats", "")
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, rows, 2)
	assert.Equal(t, "main", rows[0]["category"])
	assert.Equal(t, float64(3), rows[0]["count"])
}

func TestOrderStatsEmpty(t *testing.T) {
	app := newStatsApp(&fakeStore{})

	resp, rows := doJSONList(t, app, "GET", "/order-stats", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, rows)
}
