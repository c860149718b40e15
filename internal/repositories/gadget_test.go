package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/models"
)

func gadgetTestColumns() []string {
	return []string{"gadget_id", "name", "codename", "description", "status", "decommissioned_at", "created_at", "updated_at"}
}

func TestGadgetReadRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("all gadgets", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM gadgets")).
			WithArgs(nil).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(uuid.New(), "Voice Modulator", "The Kraken", "", "AVAILABLE", nil, now, now).
				AddRow(uuid.New(), "Face Mapping Mask", "Operation Ghost", "", "DEPLOYED", nil, now, now))

		gadgets, err := repo.List(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, gadgets, 2)
		assert.Equal(t, "The Kraken", gadgets[0].Codename)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		status := models.StatusDeployed
		mock.ExpectQuery(regexp.QuoteMeta("FROM gadgets")).
			WithArgs(&status).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(uuid.New(), "Face Mapping Mask", "Operation Ghost", "", "DEPLOYED", nil, now, now))

		gadgets, err := repo.List(ctx, &status)
		assert.NoError(t, err)
		assert.Len(t, gadgets, 1)
		assert.Equal(t, models.StatusDeployed, gadgets[0].Status)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM gadgets")).
			WithArgs(nil).
			WillReturnError(errors.New("db error"))

		gadgets, err := repo.List(ctx, nil)
		assert.Error(t, err)
		assert.Nil(t, gadgets)
	})
}

func TestGadgetReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	gadgetID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE gadget_id = $1")).
			WithArgs(gadgetID).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(gadgetID, "Voice Modulator", "The Kraken", "", "AVAILABLE", nil, now, now))

		gadget, err := repo.GetByID(ctx, gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, gadgetID, gadget.GadgetID)
		assert.Nil(t, gadget.DecommissionedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE gadget_id = $1")).
			WithArgs(gadgetID).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()))

		gadget, err := repo.GetByID(ctx, gadgetID)
		assert.NoError(t, err)
		assert.Nil(t, gadget)
	})
}

func TestGadgetReadRepository_GetByCodename(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE codename = $1")).
			WithArgs("The Kraken").
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(uuid.New(), "Voice Modulator", "The Kraken", "", "AVAILABLE", nil, now, now))

		gadget, err := repo.GetByCodename(ctx, "The Kraken")
		assert.NoError(t, err)
		assert.Equal(t, "The Kraken", gadget.Codename)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE codename = $1")).
			WithArgs("Unknown Codename").
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()))

		gadget, err := repo.GetByCodename(ctx, "Unknown Codename")
		assert.NoError(t, err)
		assert.Nil(t, gadget)
	})
}

func TestGadgetWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gadgets")).
			WithArgs(sqlmock.AnyArg(), "Voice Modulator", "The Kraken", "Mimics any voice", "AVAILABLE").
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(uuid.New(), "Voice Modulator", "The Kraken", "Mimics any voice", "AVAILABLE", nil, now, now))

		gadget, err := repo.Save(ctx, "Voice Modulator", "The Kraken", "Mimics any voice")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusAvailable, gadget.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate codename", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gadgets")).
			WithArgs(sqlmock.AnyArg(), "Voice Modulator", "The Kraken", "Mimics any voice", "AVAILABLE").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		gadget, err := repo.Save(ctx, "Voice Modulator", "The Kraken", "Mimics any voice")
		assert.ErrorIs(t, err, ErrCodenameExists)
		assert.Nil(t, gadget)
	})
}

func TestGadgetWriteRepository_Update(t *testing.T) {
	ctx := context.Background()
	gadgetID := uuid.New()
	now := time.Now()

	t.Run("partial update", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		name := "Voice Modulator Mk II"
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE gadgets")).
			WithArgs(gadgetID, &name, nil, nil).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(gadgetID, name, "The Kraken", "", "AVAILABLE", nil, now, now))

		gadget, err := repo.Update(ctx, gadgetID, &name, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, name, gadget.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE gadgets")).
			WithArgs(gadgetID, nil, nil, nil).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()))

		gadget, err := repo.Update(ctx, gadgetID, nil, nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, gadget)
	})
}

func TestGadgetWriteRepository_Decommission(t *testing.T) {
	ctx := context.Background()
	gadgetID := uuid.New()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE gadgets")).
			WithArgs(gadgetID, models.StatusDecommissioned).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
				AddRow(gadgetID, "Voice Modulator", "The Kraken", "", "DECOMMISSIONED", now, now, now))

		gadget, err := repo.Decommission(ctx, gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDecommissioned, gadget.Status)
		assert.NotNil(t, gadget.DecommissionedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGadgetWriteRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE gadgets")).
			WithArgs(gadgetID, models.StatusDecommissioned).
			WillReturnRows(sqlmock.NewRows(gadgetTestColumns()))

		gadget, err := repo.Decommission(ctx, gadgetID)
		assert.NoError(t, err)
		assert.Nil(t, gadget)
	})
}

func TestGadgetWriteRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	gadgetID := uuid.New()
	now := time.Now()

	db, mock := newMockDB(t)
	repo := NewGadgetWriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE gadgets")).
		WithArgs(gadgetID, models.StatusDestroyed).
		WillReturnRows(sqlmock.NewRows(gadgetTestColumns()).
			AddRow(gadgetID, "Voice Modulator", "The Kraken", "", "DESTROYED", nil, now, now))

	gadget, err := repo.SetStatus(ctx, gadgetID, models.StatusDestroyed)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDestroyed, gadget.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
