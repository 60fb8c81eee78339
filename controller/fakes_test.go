package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aminul-islam01/bistro-boss-server/middleware"
	"github.com/aminul-islam01/bistro-boss-server/model"
	"github.com/aminul-islam01/bistro-boss-server/token"
)

const testSecret = "test-secret"

// fakeStore is an in-memory stand-in for the mongo gateway.
type fakeStore struct {
	menu     []model.MenuItem
	reviews  []model.Review
	users    []model.User
	carts    []model.CartItem
	payments []model.Payment

	deleteCartCalls [][]string
	orderStats      []model.OrderStat
}

var (
	_ MenuStore             = (*fakeStore)(nil)
	_ ReviewStore           = (*fakeStore)(nil)
	_ UserStore             = (*fakeStore)(nil)
	_ CartStore             = (*fakeStore)(nil)
	_ PaymentStore          = (*fakeStore)(nil)
	_ StatsStore            = (*fakeStore)(nil)
	_ middleware.UserFinder = (*fakeStore)(nil)
)

func (f *fakeStore) ListMenu(context.Context) ([]model.MenuItem, error) { return f.menu, nil }

func (f *fakeStore) InsertMenuItem(_ context.Context, item model.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	f.menu = append(f.menu, item)
	return item.ID, nil
}

func (f *fakeStore) ListReviews(context.Context) ([]model.Review, error) { return f.reviews, nil }

func (f *fakeStore) ListUsers(context.Context) ([]model.User, error) { return f.users, nil }

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertUser(_ context.Context, doc bson.M) (interface{}, error) {
	email, _ := doc["email"].(string)
	name, _ := doc["name"].(string)
	user := model.User{ID: primitive.NewObjectID(), Email: email, Name: name}
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeStore) GrantAdmin(_ context.Context, id string) (int64, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			f.users[i].Role = "admin"
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) ListCartItems(_ context.Context, email string) ([]model.CartItem, error) {
	var items []model.CartItem
	for _, item := range f.carts {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeStore) InsertCartItem(_ context.Context, item model.CartItem) (primitive.ObjectID, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.carts = append(f.carts, item)
	return item.ID, nil
}

func (f *fakeStore) DeleteCartItem(_ context.Context, id string) (int64, error) {
	return f.removeCartIDs([]string{id}), nil
}

func (f *fakeStore) DeleteCartItems(_ context.Context, ids []string) (int64, error) {
	f.deleteCartCalls = append(f.deleteCartCalls, ids)
	return f.removeCartIDs(ids), nil
}

func (f *fakeStore) removeCartIDs(ids []string) int64 {
	var kept []model.CartItem
	var removed int64
	for _, item := range f.carts {
		matched := false
		for _, id := range ids {
			if item.ID.Hex() == id {
				matched = true
				break
			}
		}
		if matched {
			removed++
		} else {
			kept = append(kept, item)
		}
	}
	f.carts = kept
	return removed
}

func (f *fakeStore) InsertPayment(_ context.Context, payment model.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()
	f.payments = append(f.payments, payment)
	return payment.ID, nil
}

func (f *fakeStore) CountUsers(context.Context) (int64, error)    { return int64(len(f.users)), nil }
func (f *fakeStore) CountMenu(context.Context) (int64, error)     { return int64(len(f.menu)), nil }
func (f *fakeStore) CountPayments(context.Context) (int64, error) { return int64(len(f.payments)), nil }

func (f *fakeStore) TotalRevenue(context.Context) (float64, error) {
	var total float64
	for _, p := range f.payments {
		total += p.Price
	}
	return total, nil
}

func (f *fakeStore) OrderStats(context.Context) ([]model.OrderStat, error) {
	return f.orderStats, nil
}

type fakeBridge struct {
	amount int64
	secret string
	err    error
}

func (f *fakeBridge) CreateIntent(_ context.Context, amount int64) (string, error) {
	f.amount = amount
	return f.secret, f.err
}

func issueToken(t *testing.T, email string) string {
	t.Helper()
	tok, err := token.NewService(testSecret).Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return tok
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, bearer string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(data) > 0 && data[0] == '{' {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, method, target, bearer string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded []map[string]interface{}
	if len(data) > 0 && data[0] == '[' {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}
