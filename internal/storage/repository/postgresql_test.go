package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentesana/landing-api/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and fetch by email", func(t *testing.T) {
		id, err := storage.CreateUser(ctx, models.User{
			Name:         "María García",
			Email:        "maria@gmail.com",
			PasswordHash: "hashed-password",
			Role:         models.RoleUser,
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, err := storage.GetUserByEmail(ctx, "maria@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "María García", got.Name)
		assert.Equal(t, "hashed-password", got.PasswordHash)
		assert.Equal(t, models.RoleUser, got.Role)
		assert.False(t, got.RegisteredAt.IsZero())
	})

	t.Run("fetch by id omits the hash", func(t *testing.T) {
		byEmail, err := storage.GetUserByEmail(ctx, "maria@gmail.com")
		require.NoError(t, err)

		got, err := storage.GetUserByID(ctx, byEmail.ID)
		require.NoError(t, err)
		assert.Empty(t, got.PasswordHash)
		assert.Equal(t, byEmail.Email, got.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Name:         "Otra María",
			Email:        "maria@gmail.com",
			PasswordHash: "other-hash",
			Role:         models.RoleUser,
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("missing user lookups", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "nadie@gmail.com")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = storage.GetUserByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("role update and idempotent delete", func(t *testing.T) {
		got, err := storage.GetUserByEmail(ctx, "maria@gmail.com")
		require.NoError(t, err)

		require.NoError(t, storage.UpdateUserRole(ctx, got.ID, models.RoleAdmin))
		updated, err := storage.GetUserByID(ctx, got.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, updated.Role)

		// Updating a missing id is a no-op success.
		assert.NoError(t, storage.UpdateUserRole(ctx, uuid.New().String(), models.RoleUser))

		require.NoError(t, storage.DeleteUser(ctx, got.ID))
		require.NoError(t, storage.DeleteUser(ctx, got.ID))
		_, err = storage.GetUserByID(ctx, got.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestStorage_ParallelDuplicateRegistration(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = storage.CreateUser(ctx, models.User{
				Name:         "Corredora",
				Email:        "corredora@gmail.com",
				PasswordHash: "hash",
				Role:         models.RoleUser,
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, errors.Is(err, ErrEmailTaken), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners, "exactly one registration should win the race")

	count, err := storage.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_Inscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	t.Run("create keeps optional fields nullable", func(t *testing.T) {
		id, err := storage.CreateInscription(ctx, models.NewLead{
			Name:  "María García",
			Email: "maria@gmail.com",
		})
		require.NoError(t, err)

		full, err := storage.CreateInscription(ctx, models.NewLead{
			Name:    "Pedro Rojas",
			Email:   "pedro@gmail.com",
			Phone:   "987654321",
			Message: "Quiero más información",
		})
		require.NoError(t, err)
		assert.Greater(t, full, id)

		items, err := storage.ListInscriptions(ctx, 0)
		require.NoError(t, err)
		require.Len(t, items, 2)

		// Newest first.
		assert.Equal(t, "Pedro Rojas", items[0].Name)
		require.NotNil(t, items[0].Phone)
		assert.Equal(t, "987654321", *items[0].Phone)
		assert.Nil(t, items[1].Phone)
		assert.Nil(t, items[1].Message)
	})

	t.Run("limit caps the listing", func(t *testing.T) {
		items, err := storage.ListInscriptions(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("idempotent delete", func(t *testing.T) {
		items, err := storage.ListInscriptions(ctx, 1)
		require.NoError(t, err)
		id := items[0].ID

		require.NoError(t, storage.DeleteInscription(ctx, id))
		require.NoError(t, storage.DeleteInscription(ctx, id))

		count, err := storage.CountInscriptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("monthly grouping respects the window start", func(t *testing.T) {
		_, err := storage.DB.Exec(`DELETE FROM inscripciones`)
		require.NoError(t, err)

		now := time.Now().UTC()
		thisMonth := time.Date(now.Year(), now.Month(), 10, 12, 0, 0, 0, time.UTC)
		factory.CreateInscription(t, "Reciente Uno", "uno@gmail.com", thisMonth)
		factory.CreateInscription(t, "Reciente Dos", "dos@gmail.com", thisMonth)
		factory.CreateInscription(t, "Antigua", "vieja@gmail.com", thisMonth.AddDate(-1, 0, 0))

		windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
		byMonth, err := storage.CountInscriptionsByMonth(ctx, windowStart)
		require.NoError(t, err)

		assert.Equal(t, map[string]int{thisMonth.Format("2006-01"): 2}, byMonth)
	})
}

func TestStorage_MetricsAndPurchases(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	t.Run("average over typed events", func(t *testing.T) {
		factory.CreateMetricEvent(t, models.MetricSatisfaction, 90)
		factory.CreateMetricEvent(t, models.MetricSatisfaction, 100)
		factory.CreateMetricEvent(t, models.MetricInscription, 1)

		avg, count, err := storage.AverageMetricValue(ctx, models.MetricSatisfaction)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.InDelta(t, 95.0, avg, 0.001)

		_, count, err = storage.AverageMetricValue(ctx, "inexistente")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("purchases join the owner and survive its deletion", func(t *testing.T) {
		userID := factory.CreateUser(t, "Comprador", "comprador@gmail.com", "hash", models.RoleUser)
		paid := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
		factory.CreatePurchase(t, &userID, "premium", 199.90, paid)
		factory.CreatePurchase(t, nil, "basico", 49.90, paid.AddDate(0, 0, 1))

		items, err := storage.ListPurchases(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		// Newest first; the anonymous purchase has no owner fields.
		assert.Equal(t, "basico", items[0].Plan)
		assert.Nil(t, items[0].UserName)
		require.NotNil(t, items[1].UserName)
		assert.Equal(t, "Comprador", *items[1].UserName)

		total, err := storage.SumPurchases(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 249.80, total, 0.001)

		require.NoError(t, storage.DeleteUser(ctx, userID))
		items, err = storage.ListPurchases(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Nil(t, items[1].UserID)
		assert.Nil(t, items[1].UserName)
	})
}
