package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

func strPtr(s string) *string { return &s }

func newUser(email string) models.NewUser {
	return models.NewUser{
		Name:     "Ann " + email,
		Email:    email,
		Password: "hash",
		Phone:    "5551234567",
		Age:      30,
		Goal:     "endurance",
	}
}

// runStoreContract exercises behavior every Store implementation shares.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("CreateUser assigns increasing ids and defaults", func(t *testing.T) {
		s := newStore(t)
		a, err := s.CreateUser(ctx, newUser("a@x.com"))
		require.NoError(t, err)
		b, err := s.CreateUser(ctx, newUser("b@x.com"))
		require.NoError(t, err)

		assert.Greater(t, b.ID, a.ID)
		assert.False(t, a.IsAdmin)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("duplicate email is rejected and first user kept", func(t *testing.T) {
		s := newStore(t)
		first, err := s.CreateUser(ctx, newUser("dup@x.com"))
		require.NoError(t, err)

		_, err = s.CreateUser(ctx, newUser("dup@x.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)

		users, err := s.GetAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, first.ID, users[0].ID)
	})

	t.Run("lookups that miss return nil without error", func(t *testing.T) {
		s := newStore(t)
		u, err := s.GetUser(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, u)

		u, err = s.GetUserByEmail(ctx, "nobody@x.com")
		assert.NoError(t, err)
		assert.Nil(t, u)

		reviews, err := s.GetAllReviews(ctx)
		assert.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("GetUserByEmail and GetUser find the record", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreateUser(ctx, newUser("find@x.com"))
		require.NoError(t, err)

		byEmail, err := s.GetUserByEmail(ctx, "find@x.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, created.ID, byEmail.ID)

		byID, err := s.GetUser(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "find@x.com", byID.Email)
	})

	t.Run("reviews are joined with author name or placeholder", func(t *testing.T) {
		s := newStore(t)
		u, err := s.CreateUser(ctx, newUser("author@x.com"))
		require.NoError(t, err)

		_, err = s.CreateReview(ctx, models.NewReview{UserID: u.ID, Rating: 5, Message: "great coaches"})
		require.NoError(t, err)
		_, err = s.CreateReview(ctx, models.NewReview{UserID: 4242, Rating: 3, Message: "ok"})
		require.NoError(t, err)

		reviews, err := s.GetAllReviews(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, u.Name, reviews[0].UserName)
		assert.Equal(t, models.UnknownUserName, reviews[1].UserName)

		mine, err := s.GetReviewsByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "great coaches", mine[0].Message)
	})

	t.Run("optional fields keep absent distinct from empty", func(t *testing.T) {
		s := newStore(t)
		absent, err := s.CreateMembershipInquiry(ctx, models.NewMembershipInquiry{
			Name: "Bo", Email: "bo@x.com", Phone: "5550000000", Interest: "membership",
		})
		require.NoError(t, err)
		empty, err := s.CreateMembershipInquiry(ctx, models.NewMembershipInquiry{
			Name: "Cy", Email: "cy@x.com", Phone: "5550000001", Interest: "membership",
			Message: strPtr(""), PlanType: strPtr("premium"),
		})
		require.NoError(t, err)

		all, err := s.GetAllMembershipInquiries(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		assert.Equal(t, absent.ID, all[0].ID)
		assert.Nil(t, all[0].Message)
		assert.Nil(t, all[0].PlanType)

		assert.Equal(t, empty.ID, all[1].ID)
		require.NotNil(t, all[1].Message)
		assert.Equal(t, "", *all[1].Message)
		require.NotNil(t, all[1].PlanType)
		assert.Equal(t, "premium", *all[1].PlanType)
	})

	t.Run("stats are recomputed from collection sizes", func(t *testing.T) {
		s := newStore(t)
		for _, e := range []string{"s1@x.com", "s2@x.com", "s3@x.com"} {
			_, err := s.CreateUser(ctx, newUser(e))
			require.NoError(t, err)
		}
		_, err := s.CreateUser(ctx, newUser("s1@x.com"))
		require.ErrorIs(t, err, ErrEmailTaken)

		_, err = s.CreateReview(ctx, models.NewReview{UserID: 1, Rating: 4, Message: "nice"})
		require.NoError(t, err)
		_, err = s.CreateMembershipInquiry(ctx, models.NewMembershipInquiry{Name: "A", Email: "a@x.com", Phone: "1", Interest: "x"})
		require.NoError(t, err)
		_, err = s.CreateContactMessage(ctx, models.NewContactMessage{Name: "B", Email: "b@x.com", Phone: "2", Interest: "y"})
		require.NoError(t, err)

		stats, err := s.GetSiteStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalUsers)
		assert.Equal(t, int64(1), stats.TotalReviews)
		assert.Equal(t, int64(2), stats.TotalInquiries)
		assert.Equal(t, int64(0), stats.MonthlyVisitors)

		again, err := s.GetSiteStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, again)
	})

	t.Run("every visitor increment counts", func(t *testing.T) {
		s := newStore(t)
		const n = 50
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.IncrementVisitors(ctx))
			}()
		}
		wg.Wait()

		stats, err := s.GetSiteStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(n), stats.MonthlyVisitors)
	})

	t.Run("SetAdmin flips the flag and reports unknown ids", func(t *testing.T) {
		s := newStore(t)
		u, err := s.CreateUser(ctx, newUser("boss@x.com"))
		require.NoError(t, err)

		require.NoError(t, s.SetAdmin(ctx, u.ID, true))
		got, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.IsAdmin)

		assert.ErrorIs(t, s.SetAdmin(ctx, 12345, true), ErrNotFound)
	})

	t.Run("BootstrapAdmin is idempotent", func(t *testing.T) {
		s := newStore(t)
		first, err := BootstrapAdmin(ctx, s, "admin@x.com", "hash")
		require.NoError(t, err)
		assert.True(t, first.IsAdmin)

		second, err := BootstrapAdmin(ctx, s, "admin@x.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		users, err := s.GetAllUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}
