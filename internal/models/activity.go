package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity verbs recorded in the stream.
const (
	ActivityFollow   = "follow"
	ActivityUnfollow = "unfollow"
	ActivityUpload   = "upload"
)

// ActivityEvent is one append-only entry in a profile's activity stream,
// stored in MongoDB. TargetID is the other profile for follow events and
// the media asset for uploads.
type ActivityEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID uint               `bson:"profile_id" json:"profile_id"`
	Verb      string             `bson:"verb" json:"verb"`
	TargetID  uint               `bson:"target_id,omitempty" json:"target_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
