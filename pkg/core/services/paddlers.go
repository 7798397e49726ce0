package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/pkg/core/model"
	"github.com/kaiolohia/roster/pkg/db"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// PaddlerInput carries the admin-entered fields of a paddler record.
type PaddlerInput struct {
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	Gender         string `validate:"required,oneof=kane wahine"`
	Type           string `validate:"required,oneof=racer casual very-casual"`
	Ability        int    `validate:"required,min=1,max=5"`
	SeatPreference string
	Email          string `validate:"omitempty,email"`
}

func (in PaddlerInput) validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("paddler validation failed: %w", err)
	}
	if err := model.ValidateSeatPreference(in.SeatPreference); err != nil {
		return fmt.Errorf("paddler validation failed: %w", err)
	}
	return nil
}

func (in PaddlerInput) record(id string) *db.Paddler {
	pref := in.SeatPreference
	if pref == "" {
		pref = "000000"
	}
	return &db.Paddler{
		ID:             id,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Gender:         in.Gender,
		Type:           in.Type,
		Ability:        in.Ability,
		SeatPreference: pref,
		Email:          in.Email,
	}
}

// PaddlerWriteStore defines the database operations for paddler CRUD
type PaddlerWriteStore interface {
	GetPaddler(ctx context.Context, id string) (*db.Paddler, error)
	InsertPaddler(ctx context.Context, paddler *db.Paddler) error
	UpdatePaddler(ctx context.Context, paddler *db.Paddler) error
	DeletePaddler(ctx context.Context, id string) error
}

// CreatePaddler validates the input and inserts a new paddler record.
func CreatePaddler(ctx context.Context, store PaddlerWriteStore, logger *zap.Logger, input PaddlerInput) (*db.Paddler, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	paddler := input.record(uuid.New().String())
	if err := store.InsertPaddler(ctx, paddler); err != nil {
		return nil, fmt.Errorf("failed to insert paddler: %w", err)
	}

	logger.Info("Paddler created",
		zap.String("paddler_id", paddler.ID),
		zap.String("name", paddler.FirstName+" "+paddler.LastName))

	return paddler, nil
}

// UpdatePaddler validates the input and overwrites an existing record.
func UpdatePaddler(ctx context.Context, store PaddlerWriteStore, logger *zap.Logger, id string, input PaddlerInput) (*db.Paddler, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := store.GetPaddler(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to fetch paddler: %w", err)
	}

	paddler := input.record(id)
	if err := store.UpdatePaddler(ctx, paddler); err != nil {
		return nil, fmt.Errorf("failed to update paddler: %w", err)
	}

	logger.Info("Paddler updated", zap.String("paddler_id", id))
	return paddler, nil
}

// DeletePaddler removes a paddler. Any seat they occupy, in any scope,
// is evicted first; the store runs the whole cascade in one transaction.
func DeletePaddler(ctx context.Context, store PaddlerWriteStore, logger *zap.Logger, id string) error {
	if err := store.DeletePaddler(ctx, id); err != nil {
		return fmt.Errorf("failed to delete paddler: %w", err)
	}

	logger.Info("Paddler deleted", zap.String("paddler_id", id))
	return nil
}
