package store_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/config"
	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestOpen_SQLite_Reopen verifies that opening an existing database file a
// second time neither errors nor disturbs data written through the first handle.
func TestOpen_SQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "travel.db"),
	}

	first, err := store.Open(ctx, cfg, discardLogger())
	require.NoError(t, err)

	acct, err := first.Accounts.Create(ctx, "alice", "pw1")
	require.NoError(t, err)
	budget, travelers := 500.0, 2
	_, err = first.Itineraries.Create(ctx, domain.Itinerary{
		OwnerID: acct.ID, Destination: "Paris", Country: "France",
		TravelDate: "2025-06-01", ReturnDate: "2025-06-10",
		BudgetPerPerson: budget, TravelerCount: travelers,
	})
	require.NoError(t, err)
	first.Close()

	second, err := store.Open(ctx, cfg, discardLogger())
	require.NoError(t, err, "re-running schema initialization must not error")
	t.Cleanup(second.Close)

	got, err := second.Accounts.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got.ID)

	list, err := second.Itineraries.ListByOwner(ctx, acct.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Paris", list[0].Destination)
}

// TestOpen_SQLite_ForeignKeysEnforced verifies the DSN turns foreign keys on,
// so an itinerary cannot reference an account that does not exist.
func TestOpen_SQLite_ForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "fk.db"),
	}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(s.Close)

	_, err = s.Itineraries.Create(ctx, domain.Itinerary{
		OwnerID: 999, Destination: "Rome", Country: "Italy",
		TravelDate: "2025-01-01", ReturnDate: "2025-01-05",
		BudgetPerPerson: 100, TravelerCount: 1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := store.SQLiteDSN("/var/lib/travel.db")

	assert.Contains(t, dsn, "file:/var/lib/travel.db?")
	assert.Contains(t, dsn, "_pragma=foreign_keys(1)")
}
