package models

import "time"

type Review struct {
	ID        int64     `bson:"_id" json:"id"`
	UserID    int64     `bson:"userId" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// UnknownUserName labels reviews whose author no longer resolves.
const UnknownUserName = "Unknown User"

// ReviewWithUser is a review joined with its author's display name.
type ReviewWithUser struct {
	Review
	UserName string `json:"userName"`
}

type NewReview struct {
	UserID  int64
	Rating  int
	Message string
}
