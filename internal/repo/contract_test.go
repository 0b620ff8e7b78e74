package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// repoFactory returns a fresh, isolated pair of repos sharing one database.
type repoFactory func(t *testing.T) (repo.AccountRepo, repo.ItineraryRepo)

// itineraryFixture returns a valid itinerary owned by ownerID.
// Callers can override individual fields after calling this function.
func itineraryFixture(ownerID int64) domain.Itinerary {
	return domain.Itinerary{
		OwnerID:         ownerID,
		Destination:     "Paris",
		Country:         "France",
		TravelDate:      "2025-06-01",
		ReturnDate:      "2025-06-10",
		BudgetPerPerson: 500.0,
		TravelerCount:   2,
	}
}

// runRepoContract exercises the behaviour every backend must share.
// Postgres and SQLite tests both call it with their own factory.
func runRepoContract(t *testing.T, newRepos repoFactory) {
	t.Run("Account_Create", func(t *testing.T) {
		accounts, _ := newRepos(t)
		ctx := context.Background()

		got, err := accounts.Create(ctx, "alice", "pw1")

		require.NoError(t, err)
		assert.NotZero(t, got.ID, "ID should be DB-generated")
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "pw1", got.Credential)
	})

	t.Run("Account_Create_Duplicate", func(t *testing.T) {
		accounts, _ := newRepos(t)
		ctx := context.Background()

		_, err := accounts.Create(ctx, "alice", "pw1")
		require.NoError(t, err)

		_, err = accounts.Create(ctx, "alice", "pw2")

		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("Account_Create_CaseSensitive", func(t *testing.T) {
		accounts, _ := newRepos(t)
		ctx := context.Background()

		a, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)
		b, err := accounts.Create(ctx, "Alice", "pw")
		require.NoError(t, err, "usernames differing only in case are distinct")
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Itinerary_IDsNotReused", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		owner, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)

		first, err := itineraries.Create(ctx, itineraryFixture(owner.ID))
		require.NoError(t, err)
		require.NoError(t, itineraries.Delete(ctx, first.ID))
		second, err := itineraries.Create(ctx, itineraryFixture(owner.ID))
		require.NoError(t, err)

		assert.Greater(t, second.ID, first.ID, "a deleted id must not be handed out again")
	})

	t.Run("Account_GetByUsername", func(t *testing.T) {
		accounts, _ := newRepos(t)
		ctx := context.Background()

		created, err := accounts.Create(ctx, "alice", "pw1")
		require.NoError(t, err)

		got, err := accounts.GetByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Account_GetByUsername_NotFound", func(t *testing.T) {
		accounts, _ := newRepos(t)

		_, err := accounts.GetByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Itinerary_Create", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		owner, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)

		input := itineraryFixture(owner.ID)
		got, err := itineraries.Create(ctx, input)

		require.NoError(t, err)
		assert.NotZero(t, got.ID)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, input.Destination, got.Destination)
		assert.Equal(t, input.Country, got.Country)
		assert.Equal(t, input.TravelDate, got.TravelDate)
		assert.Equal(t, input.ReturnDate, got.ReturnDate)
		assert.InDelta(t, input.BudgetPerPerson, got.BudgetPerPerson, 1e-9)
		assert.Equal(t, input.TravelerCount, got.TravelerCount)
		assert.Nil(t, got.Rating, "new itineraries start unrated")
	})

	t.Run("Itinerary_Create_UnknownOwner", func(t *testing.T) {
		_, itineraries := newRepos(t)

		_, err := itineraries.Create(context.Background(), itineraryFixture(987654))

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Itinerary_GetByID_NotFound", func(t *testing.T) {
		_, itineraries := newRepos(t)

		_, err := itineraries.GetByID(context.Background(), 987654)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Itinerary_ListByOwner", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		alice, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)
		bob, err := accounts.Create(ctx, "bob", "pw")
		require.NoError(t, err)

		first := itineraryFixture(alice.ID)
		second := itineraryFixture(alice.ID)
		second.Destination = "Lyon"
		other := itineraryFixture(bob.ID)
		other.Destination = "Berlin"

		for _, it := range []domain.Itinerary{first, other, second} {
			_, err := itineraries.Create(ctx, it)
			require.NoError(t, err)
		}

		got, err := itineraries.ListByOwner(ctx, alice.ID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		// Insertion order via the primary key.
		assert.Equal(t, "Paris", got[0].Destination)
		assert.Equal(t, "Lyon", got[1].Destination)
		assert.Less(t, got[0].ID, got[1].ID)

		again, err := itineraries.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, got, again, "repeated listing must be stable")
	})

	t.Run("Itinerary_ListByOwner_Empty", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		owner, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)

		got, err := itineraries.ListByOwner(ctx, owner.ID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Itinerary_Delete", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		owner, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)
		created, err := itineraries.Create(ctx, itineraryFixture(owner.ID))
		require.NoError(t, err)

		require.NoError(t, itineraries.Delete(ctx, created.ID))

		_, err = itineraries.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, "itinerary should be gone after delete")

		list, err := itineraries.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		err = itineraries.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, "second delete must report not found")
	})

	t.Run("Itinerary_SetRating", func(t *testing.T) {
		accounts, itineraries := newRepos(t)
		ctx := context.Background()
		owner, err := accounts.Create(ctx, "alice", "pw")
		require.NoError(t, err)
		created, err := itineraries.Create(ctx, itineraryFixture(owner.ID))
		require.NoError(t, err)

		updated, err := itineraries.SetRating(ctx, created.ID, 4)
		require.NoError(t, err)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 4, *updated.Rating)

		// Overwrite.
		updated, err = itineraries.SetRating(ctx, created.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, *updated.Rating)

		got, err := itineraries.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("Itinerary_SetRating_NotFound", func(t *testing.T) {
		_, itineraries := newRepos(t)

		_, err := itineraries.SetRating(context.Background(), 987654, 3)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
