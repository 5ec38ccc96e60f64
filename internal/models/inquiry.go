package models

import "time"

// MembershipInquiry is a plan-interest submission. Message and PlanType are
// nil when the submitter left them out; an empty string is kept as given.
type MembershipInquiry struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Interest  string    `bson:"interest" json:"interest"`
	Message   *string   `bson:"message,omitempty" json:"message"`
	PlanType  *string   `bson:"planType,omitempty" json:"planType"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type ContactMessage struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Interest  string    `bson:"interest" json:"interest"`
	Message   *string   `bson:"message,omitempty" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type NewMembershipInquiry struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  *string
	PlanType *string
}

type NewContactMessage struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  *string
}
