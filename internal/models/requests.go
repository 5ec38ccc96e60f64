package models

// Request shapes bound from JSON bodies. The binding tags are checked by
// gin's validator before anything reaches the store.

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required,min=10"`
	Age      int    `json:"age" binding:"required,min=16,max=100"`
	Goal     string `json:"goal" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ReviewRequest struct {
	UserID  int64  `json:"userId" binding:"required,min=1"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
}

type MembershipInquiryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required"`
	Interest string  `json:"interest" binding:"required"`
	Message  *string `json:"message"`
	PlanType *string `json:"planType"`
}

type ContactMessageRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required"`
	Interest string  `json:"interest" binding:"required"`
	Message  *string `json:"message"`
}

func (r RegisterRequest) ToNewUser(passwordHash string) NewUser {
	return NewUser{
		Name:     r.Name,
		Email:    r.Email,
		Password: passwordHash,
		Phone:    r.Phone,
		Age:      r.Age,
		Goal:     r.Goal,
	}
}

func (r ReviewRequest) ToNewReview() NewReview {
	return NewReview{UserID: r.UserID, Rating: r.Rating, Message: r.Message}
}

func (r MembershipInquiryRequest) ToNewInquiry() NewMembershipInquiry {
	return NewMembershipInquiry{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Interest: r.Interest,
		Message:  r.Message,
		PlanType: r.PlanType,
	}
}

func (r ContactMessageRequest) ToNewContactMessage() NewContactMessage {
	return NewContactMessage{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Interest: r.Interest,
		Message:  r.Message,
	}
}
