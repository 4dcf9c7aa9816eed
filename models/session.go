package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is an audit record of an issued token. Request auth itself is
// stateless (the JWT is self-validating); these are never read back on auth.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	ExpiresAt int64              `bson:"expires_at"`
	CreatedAt time.Time          `bson:"created_at"`
}
