package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aminul-islam01/bistro-boss-server/model"
)

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.users.EstimatedDocumentCount(ctx)
}

func (s *Store) CountMenu(ctx context.Context) (int64, error) {
	return s.menu.EstimatedDocumentCount(ctx)
}

func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums price across all payments. With zero payment documents
// the pipeline yields no group row; that is reported as revenue 0, not an
// error.
func (s *Store) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}},
	}
	cur, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// OrderStats joins payments to the menu items they reference and groups by
// category, producing order count and price total per category.
func (s *Store) OrderStats(ctx context.Context) ([]model.OrderStat, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "menu",
			"localField":   "menuItems",
			"foreignField": "_id",
			"as":           "menuItemsData",
		}},
		{"$unwind": "$menuItemsData"},
		{"$group": bson.M{
			"_id":   "$menuItemsData.category",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$menuItemsData.price"},
		}},
		{"$project": bson.M{
			"category": "$_id",
			"count":    "$count",
			"total":    "$total",
			"_id":      0,
		}},
	}
	cur, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var stats []model.OrderStat
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
