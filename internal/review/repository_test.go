package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rv := &Review{
			ID:        "r1",
			ProductID: "p1",
			UserID:    "u1",
			Rating:    4,
			Comment:   "Solid build",
			CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}

		mock.ExpectExec(`(?s)INSERT INTO reviews`).
			WithArgs(rv.ID, rv.ProductID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, rv))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`(?s)INSERT INTO reviews`).WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Create(ctx, &Review{}))
	})
}

func TestRepository_ListByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`(?s)SELECT .* FROM reviews WHERE product_id = \$1`).
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "rating", "comment", "created_at"}).
				AddRow("r2", "p1", "u2", 5, "Great", created).
				AddRow("r1", "p1", "u1", 3, "", created.Add(-time.Hour)))

		reviews, err := repo.ListByProduct(ctx, "p1")
		assert.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "r2", reviews[0].ID)
		assert.Equal(t, 5, reviews[0].Rating)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM reviews`).WillReturnError(errors.New("db error"))

		_, err = repo.ListByProduct(ctx, "p1")
		assert.Error(t, err)
	})
}
