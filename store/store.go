package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aminul-islam01/bistro-boss-server/model"
)

// Store is the single gateway over the five collections. It is built once at
// startup and injected into every controller; no package-level handle exists.
type Store struct {
	menu     *mongo.Collection
	reviews  *mongo.Collection
	users    *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		menu:     db.Collection("menu"),
		reviews:  db.Collection("reviews"),
		users:    db.Collection("users"),
		carts:    db.Collection("carts"),
		payments: db.Collection("payments"),
	}
}

func (s *Store) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertMenuItem(ctx context.Context, item model.MenuItem) (primitive.ObjectID, error) {
	res, err := s.menu.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Store) ListReviews(ctx context.Context) ([]model.Review, error) {
	cur, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByEmail returns (nil, nil) when no user exists; uniqueness of the
// email is enforced here by lookup, not by a database constraint.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, doc bson.M) (interface{}, error) {
	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (s *Store) GrantAdmin(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) ListCartItems(ctx context.Context, email string) ([]model.CartItem, error) {
	cur, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, item model.CartItem) (primitive.ObjectID, error) {
	res, err := s.carts.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := s.carts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteCartItems removes every cart row whose id is in ids. Absent ids are
// simply not matched; the returned count may be lower than len(ids).
func (s *Store) DeleteCartItems(ctx context.Context, ids []string) (int64, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return 0, err
	}
	res, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) InsertPayment(ctx context.Context, payment model.Payment) (primitive.ObjectID, error) {
	res, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
