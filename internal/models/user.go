package models

import "time"

type User struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // bcrypt hash, never serialized
	Phone     string    `bson:"phone" json:"phone"`
	Age       int       `bson:"age" json:"age"`
	Goal      string    `bson:"goal" json:"goal"`
	IsAdmin   bool      `bson:"isAdmin" json:"isAdmin"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NewUser is the insert shape for a user; Password is already hashed.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Age      int
	Goal     string
}
