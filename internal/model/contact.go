package model

import "time"

// ContactMessage is an unauthenticated inbound message. Write-only from the
// API's perspective; there is no read endpoint.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
