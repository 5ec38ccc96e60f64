package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

const siteStatsID = "site"

// MongoStore persists the collections in MongoDB. Numeric ids come from a
// counters collection so they stay monotonically increasing per entity.
type MongoStore struct {
	users     *mongo.Collection
	reviews   *mongo.Collection
	inquiries *mongo.Collection
	messages  *mongo.Collection
	counters  *mongo.Collection
	stats     *mongo.Collection

	now func() time.Time
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:     db.Collection("users"),
		reviews:   db.Collection("reviews"),
		inquiries: db.Collection("membership_inquiries"),
		messages:  db.Collection("contact_messages"),
		counters:  db.Collection("counters"),
		stats:     db.Collection("site_stats"),
		now:       time.Now,
	}
}

// EnsureIndexes creates the unique email index and the review author index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := s.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("reviews index: %w", err)
	}
	return nil
}

func (s *MongoStore) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	existing, err := s.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	id, err := s.nextID(ctx, "users")
	if err != nil {
		return nil, err
	}
	u := models.User{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
		Age:       in.Age,
		Goal:      in.Goal,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		// the unique index catches a concurrent registration that slipped past the lookup
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *MongoStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return findOne[models.User](ctx, s.users, bson.M{"_id": id})
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.users, bson.M{"email": email})
}

func (s *MongoStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.users, bson.M{})
}

func (s *MongoStore) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isAdmin": isAdmin}})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CreateReview(ctx context.Context, in models.NewReview) (*models.Review, error) {
	id, err := s.nextID(ctx, "reviews")
	if err != nil {
		return nil, err
	}
	r := models.Review{
		ID:        id,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.reviews.InsertOne(ctx, r); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &r, nil
}

func (s *MongoStore) GetAllReviews(ctx context.Context) ([]models.ReviewWithUser, error) {
	reviews, err := findAll[models.Review](ctx, s.reviews, bson.M{})
	if err != nil {
		return nil, err
	}
	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	out := make([]models.ReviewWithUser, 0, len(reviews))
	for _, r := range reviews {
		name, ok := names[r.UserID]
		if !ok {
			name = models.UnknownUserName
		}
		out = append(out, models.ReviewWithUser{Review: r, UserName: name})
	}
	return out, nil
}

func (s *MongoStore) GetReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.reviews, bson.M{"userId": userID})
}

func (s *MongoStore) CreateMembershipInquiry(ctx context.Context, in models.NewMembershipInquiry) (*models.MembershipInquiry, error) {
	id, err := s.nextID(ctx, "membership_inquiries")
	if err != nil {
		return nil, err
	}
	inq := models.MembershipInquiry{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
		PlanType:  in.PlanType,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.inquiries.InsertOne(ctx, inq); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return &inq, nil
}

func (s *MongoStore) GetAllMembershipInquiries(ctx context.Context) ([]models.MembershipInquiry, error) {
	return findAll[models.MembershipInquiry](ctx, s.inquiries, bson.M{})
}

func (s *MongoStore) CreateContactMessage(ctx context.Context, in models.NewContactMessage) (*models.ContactMessage, error) {
	id, err := s.nextID(ctx, "contact_messages")
	if err != nil {
		return nil, err
	}
	m := models.ContactMessage{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Interest:  in.Interest,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.messages.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return &m, nil
}

func (s *MongoStore) GetAllContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return findAll[models.ContactMessage](ctx, s.messages, bson.M{})
}

func (s *MongoStore) GetSiteStats(ctx context.Context) (models.SiteStats, error) {
	var stats models.SiteStats

	var doc struct {
		MonthlyVisitors int64 `bson:"monthlyVisitors"`
	}
	err := s.stats.FindOne(ctx, bson.M{"_id": siteStatsID}).Decode(&doc)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return stats, fmt.Errorf("read site stats: %w", err)
	}
	stats.MonthlyVisitors = doc.MonthlyVisitors

	counts := []struct {
		coll *mongo.Collection
		dst  *int64
	}{
		{s.users, &stats.TotalUsers},
		{s.reviews, &stats.TotalReviews},
	}
	for _, c := range counts {
		n, err := c.coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return stats, fmt.Errorf("count %s: %w", c.coll.Name(), err)
		}
		*c.dst = n
	}

	inquiries, err := s.inquiries.CountDocuments(ctx, bson.M{})
	if err != nil {
		return stats, fmt.Errorf("count inquiries: %w", err)
	}
	messages, err := s.messages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return stats, fmt.Errorf("count contact messages: %w", err)
	}
	stats.TotalInquiries = inquiries + messages
	return stats, nil
}

func (s *MongoStore) IncrementVisitors(ctx context.Context) error {
	_, err := s.stats.UpdateOne(ctx,
		bson.M{"_id": siteStatsID},
		bson.M{"$inc": bson.M{"monthlyVisitors": int64(1)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("increment visitors: %w", err)
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
