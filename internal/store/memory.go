package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

// MemoryStore keeps every collection in process memory. All access goes
// through mu so id assignment and insertion happen as one step.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[int64]models.User
	reviews   map[int64]models.Review
	inquiries map[int64]models.MembershipInquiry
	messages  map[int64]models.ContactMessage
	visitors  int64

	nextUserID    int64
	nextReviewID  int64
	nextInquiryID int64
	nextMessageID int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]models.User),
		reviews:       make(map[int64]models.Review),
		inquiries:     make(map[int64]models.MembershipInquiry),
		messages:      make(map[int64]models.ContactMessage),
		nextUserID:    1,
		nextReviewID:  1,
		nextInquiryID: 1,
		nextMessageID: 1,
		now:           time.Now,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, in models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, ErrEmailTaken
		}
	}

	u := models.User{
		ID:        s.nextUserID,
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
		Age:       in.Age,
		Goal:      in.Goal,
		IsAdmin:   false,
		CreatedAt: s.now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetAllUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.users), nil
}

func (s *MemoryStore) SetAdmin(_ context.Context, id int64, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsAdmin = isAdmin
	s.users[id] = u
	return nil
}

func (s *MemoryStore) CreateReview(_ context.Context, in models.NewReview) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.Review{
		ID:        s.nextReviewID,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	s.nextReviewID++
	s.reviews[r.ID] = r
	return &r, nil
}

func (s *MemoryStore) GetAllReviews(_ context.Context) ([]models.ReviewWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ReviewWithUser, 0, len(s.reviews))
	for _, r := range values(s.reviews) {
		name := models.UnknownUserName
		if u, ok := s.users[r.UserID]; ok {
			name = u.Name
		}
		out = append(out, models.ReviewWithUser{Review: r, UserName: name})
	}
	return out, nil
}

func (s *MemoryStore) GetReviewsByUser(_ context.Context, userID int64) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, r := range values(s.reviews) {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateMembershipInquiry(_ context.Context, in models.NewMembershipInquiry) (*models.MembershipInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inq := models.MembershipInquiry{
		ID:        s.nextInquiryID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
		PlanType:  in.PlanType,
		CreatedAt: s.now(),
	}
	s.nextInquiryID++
	s.inquiries[inq.ID] = inq
	return &inq, nil
}

func (s *MemoryStore) GetAllMembershipInquiries(_ context.Context) ([]models.MembershipInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.inquiries), nil
}

func (s *MemoryStore) CreateContactMessage(_ context.Context, in models.NewContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.ContactMessage{
		ID:        s.nextMessageID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	s.nextMessageID++
	s.messages[m.ID] = m
	return &m, nil
}

func (s *MemoryStore) GetAllContactMessages(_ context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.messages), nil
}

func (s *MemoryStore) GetSiteStats(_ context.Context) (models.SiteStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.SiteStats{
		MonthlyVisitors: s.visitors,
		TotalUsers:      int64(len(s.users)),
		TotalReviews:    int64(len(s.reviews)),
		TotalInquiries:  int64(len(s.inquiries) + len(s.messages)),
	}, nil
}

func (s *MemoryStore) IncrementVisitors(_ context.Context) error {
	s.mu.Lock()
	s.visitors++
	s.mu.Unlock()
	return nil
}

// values returns the map's records in id order.
func values[T any](m map[int64]T) []T {
	out := make([]T, 0, len(m))
	for _, id := range sortedKeys(m) {
		out = append(out, m[id])
	}
	return out
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
