package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/db"
)

// CanoeInput carries the admin-entered fields of a canoe record.
type CanoeInput struct {
	Name        string `validate:"required"`
	Designation string
}

// CanoeWriteStore defines the database operations for canoe CRUD
type CanoeWriteStore interface {
	InsertCanoe(ctx context.Context, canoe *db.Canoe) error
	DeleteCanoe(ctx context.Context, id string) error
}

// CreateCanoe validates the input and inserts a new canoe record.
func CreateCanoe(ctx context.Context, store CanoeWriteStore, logger *zap.Logger, input CanoeInput) (*db.Canoe, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("canoe validation failed: %w", err)
	}

	canoe := &db.Canoe{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Designation: input.Designation,
	}
	if err := store.InsertCanoe(ctx, canoe); err != nil {
		return nil, fmt.Errorf("failed to insert canoe: %w", err)
	}

	logger.Info("Canoe created", zap.String("canoe_id", canoe.ID), zap.String("name", canoe.Name))
	return canoe, nil
}

// DeleteCanoe removes a canoe; the store rejects the delete while any
// paddler is seated in it.
func DeleteCanoe(ctx context.Context, store CanoeWriteStore, logger *zap.Logger, id string) error {
	if err := store.DeleteCanoe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete canoe: %w", err)
	}

	logger.Info("Canoe deleted", zap.String("canoe_id", id))
	return nil
}
