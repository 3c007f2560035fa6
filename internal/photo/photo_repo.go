package photo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gogram/internal/common"
	"gogram/internal/dbmongo"
)

// PhotoStore is the persistence contract for photo documents. The Mongo
// implementation below relies on single-document updates for atomicity:
// a like or comment is one update, never a read-modify-write in process.
type PhotoStore interface {
	CreatePhoto(ctx context.Context, p *Photo) error
	GetPhotoByID(ctx context.Context, id string) (*Photo, error)
	ListAllPhotos(ctx context.Context) ([]Photo, error)
	ListUserPhotos(ctx context.Context, userID uint64) ([]Photo, error)
	SearchPhotosByTitle(ctx context.Context, q string) ([]Photo, error)
	UpdatePhotoTitle(ctx context.Context, id, title string) error
	DeletePhoto(ctx context.Context, id string) error
	AddLike(ctx context.Context, id string, userID uint64) error
	AddComment(ctx context.Context, id string, c Comment) error
}

type PhotoRepository struct {
	coll *mongo.Collection
}

func NewPhotoRepository(mc *dbmongo.MongoClient) *PhotoRepository {
	return &PhotoRepository{coll: mc.Database.Collection("photos")}
}

func (r *PhotoRepository) CreatePhoto(ctx context.Context, p *Photo) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) GetPhotoByID(ctx context.Context, id string) (*Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	var p Photo
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return &p, nil
}

func (r *PhotoRepository) ListAllPhotos(ctx context.Context) ([]Photo, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *PhotoRepository) ListUserPhotos(ctx context.Context, userID uint64) ([]Photo, error) {
	return r.find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *PhotoRepository) SearchPhotosByTitle(ctx context.Context, q string) ([]Photo, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *PhotoRepository) UpdatePhotoTitle(ctx context.Context, id, title string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"title": title, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("update title: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PhotoRepository) DeletePhoto(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// AddLike appends userID to the likes array in a single update whose
// filter excludes documents already containing it. Concurrent likes from
// the same user therefore race inside Mongo, not in this process: exactly
// one wins, the rest report ErrAlreadyLiked.
func (r *PhotoRepository) AddLike(ctx context.Context, id string, userID uint64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "likes": bson.M{"$ne": userID}},
		bson.M{
			"$push": bson.M{"likes": userID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	// Either the photo is gone or the user already liked it.
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return common.ErrAlreadyLiked
}

// AddComment appends the snapshot comment. $push preserves insertion
// order; comments are never updated or removed.
func (r *PhotoRepository) AddComment(ctx context.Context, id string, c Comment) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"comments": c},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PhotoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Photo, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find photos: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return photos, nil
}
