package domain

import (
	"context"
	"time"
)

// MessageCollection is the collection contact messages are written to.
const MessageCollection = "message"

// MessageInput is the raw contact form payload before validation.
type MessageInput struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}

// Message is a validated contact form submission.
type Message struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Message string `json:"message" bson:"message"`
}

// MessageDocument is the stored form of a Message.
type MessageDocument struct {
	Message   `bson:",inline"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ContactResponse is returned after a message is stored.
type ContactResponse struct {
	Status string `json:"status" example:"ok"`
	ID     string `json:"id" example:"665f1c2ab4e5d1f0a9c3e7b2"`
}

// ContactUsecase persists contact form messages
type ContactUsecase interface {
	// Submit stores a validated message and returns the identifier assigned by the store.
	Submit(ctx context.Context, msg Message) (string, error)
}
