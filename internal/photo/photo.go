// Package photo implements the photo resource: persistence of photo
// documents, the like/comment rules, and the HTTP surface.
package photo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is one MongoDB document: the item itself plus its embedded likes
// and comments, so a single read renders everything.
type Photo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint64             `bson:"user_id" json:"user_id"` // owner, immutable
	UserName  string             `bson:"user_name" json:"user_name"`
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image" json:"image"` // GridFS file id
	Likes     []uint64           `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Comment is an embedded sub-document. Author name and image are
// snapshotted at comment time, not joined on read.
type Comment struct {
	UserID    uint64    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	UserImage string    `bson:"user_image" json:"user_image"`
	Text      string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsOwner reports whether userID created the photo.
func (p *Photo) IsOwner(userID uint64) bool {
	return p.UserID == userID
}
