package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
)

// ErrCodenameExists is returned when an insert hits the unique constraint
// on gadgets.codename.
var ErrCodenameExists = errors.New("codename already exists")

const gadgetColumns = `gadget_id, name, codename, description, status, decommissioned_at, created_at, updated_at`

// GadgetReadRepository handles gadget read operations
type GadgetReadRepository struct {
	db *sqlx.DB
}

func NewGadgetReadRepository(db *sqlx.DB) *GadgetReadRepository {
	return &GadgetReadRepository{db: db}
}

// List returns all gadgets, optionally filtered by status. Decommissioned
// and destroyed gadgets are included; rows are never deleted.
func (r *GadgetReadRepository) List(ctx context.Context, status *string) ([]models.GadgetDB, error) {
	const query = `
		SELECT ` + gadgetColumns + `
		FROM gadgets
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at
	`

	var gadgets []models.GadgetDB
	err := r.db.SelectContext(ctx, &gadgets, query, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return gadgets, nil
}

// GetByID returns the gadget with the given id, or (nil, nil) when no such
// gadget exists.
func (r *GadgetReadRepository) GetByID(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error) {
	const query = `
		SELECT ` + gadgetColumns + `
		FROM gadgets
		WHERE gadget_id = $1
	`

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, gadgetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gadgetID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}

// GetByCodename returns the gadget with the given codename, or (nil, nil)
// when no such gadget exists.
func (r *GadgetReadRepository) GetByCodename(ctx context.Context, codename string) (*models.GadgetDB, error) {
	const query = `
		SELECT ` + gadgetColumns + `
		FROM gadgets
		WHERE codename = $1
	`

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, codename)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{codename},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}

// GadgetWriteRepository handles gadget write operations
type GadgetWriteRepository struct {
	db *sqlx.DB
}

func NewGadgetWriteRepository(db *sqlx.DB) *GadgetWriteRepository {
	return &GadgetWriteRepository{db: db}
}

// Save inserts a new gadget with status AVAILABLE and returns the created
// row. A duplicate codename is reported as ErrCodenameExists so callers can
// retry generation; the constraint is the backstop for the check-then-insert
// race on generated codenames.
func (r *GadgetWriteRepository) Save(ctx context.Context, name, codename, description string) (*models.GadgetDB, error) {
	const query = `
		INSERT INTO gadgets (gadget_id, name, codename, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + gadgetColumns + `
	`
	args := []any{uuid.New(), name, codename, description, models.StatusAvailable}

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, codename},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrCodenameExists
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}

// Update applies the non-nil fields to the gadget and returns the updated
// row, or (nil, nil) when no such gadget exists. Nil fields are untouched.
func (r *GadgetWriteRepository) Update(ctx context.Context, gadgetID uuid.UUID, name, description, status *string) (*models.GadgetDB, error) {
	const query = `
		UPDATE gadgets
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    status      = COALESCE($4, status),
		    updated_at  = NOW()
		WHERE gadget_id = $1
		RETURNING ` + gadgetColumns + `
	`

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, gadgetID, name, description, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gadgetID, name, description, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}

// Decommission marks the gadget as DECOMMISSIONED and stamps the
// decommission time. Returns (nil, nil) when no such gadget exists. The row
// is kept; decommissioning never deletes.
func (r *GadgetWriteRepository) Decommission(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error) {
	const query = `
		UPDATE gadgets
		SET status = $2, decommissioned_at = NOW(), updated_at = NOW()
		WHERE gadget_id = $1
		RETURNING ` + gadgetColumns + `
	`

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, gadgetID, models.StatusDecommissioned)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gadgetID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}

// SetStatus sets the gadget status and returns the updated row, or
// (nil, nil) when no such gadget exists.
func (r *GadgetWriteRepository) SetStatus(ctx context.Context, gadgetID uuid.UUID, status string) (*models.GadgetDB, error) {
	const query = `
		UPDATE gadgets
		SET status = $2, updated_at = NOW()
		WHERE gadget_id = $1
		RETURNING ` + gadgetColumns + `
	`

	var gadget models.GadgetDB
	err := r.db.GetContext(ctx, &gadget, query, gadgetID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gadgetID, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &gadget, nil
}
