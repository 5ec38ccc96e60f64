// Package store holds the site's records. Lookups that miss return a nil
// record and a nil error; errors are reserved for real failures and for
// write conflicts.
package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("not found")
)

type Store interface {
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// SetAdmin grants or revokes the admin flag; ErrNotFound if id is unknown.
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error

	CreateReview(ctx context.Context, r models.NewReview) (*models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.ReviewWithUser, error)
	GetReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error)

	CreateMembershipInquiry(ctx context.Context, in models.NewMembershipInquiry) (*models.MembershipInquiry, error)
	GetAllMembershipInquiries(ctx context.Context) ([]models.MembershipInquiry, error)

	CreateContactMessage(ctx context.Context, m models.NewContactMessage) (*models.ContactMessage, error)
	GetAllContactMessages(ctx context.Context) ([]models.ContactMessage, error)

	GetSiteStats(ctx context.Context) (models.SiteStats, error)
	IncrementVisitors(ctx context.Context) error
}

// BootstrapAdmin makes sure the designated admin account exists and carries
// the admin flag. passwordHash must already be hashed.
func BootstrapAdmin(ctx context.Context, s Store, email, passwordHash string) (*models.User, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = s.CreateUser(ctx, models.NewUser{
			Name:     "Admin User",
			Email:    email,
			Password: passwordHash,
			Phone:    "+1234567890",
			Age:      30,
			Goal:     "management",
		})
		if err != nil {
			return nil, err
		}
	}
	if !u.IsAdmin {
		if err := s.SetAdmin(ctx, u.ID, true); err != nil {
			return nil, err
		}
		u.IsAdmin = true
	}
	return u, nil
}
