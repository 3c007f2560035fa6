package photo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"gogram/internal/common"
	"gogram/internal/dbmysql"
)

// MediaStore removes stored image files. Satisfied by dbmongo.MediaStorage.
type MediaStore interface {
	DeleteFile(ctx context.Context, fileID string) error
}

// UserDirectory resolves user profiles for author snapshots. Satisfied by
// user.UserRepository.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
}

// PhotoUsecase is what the HTTP handlers program against.
type PhotoUsecase interface {
	CreatePhoto(ctx context.Context, ownerID uint64, title, imageRef string) (*Photo, error)
	GetPhoto(ctx context.Context, id string) (*Photo, error)
	ListPhotos(ctx context.Context) ([]Photo, error)
	ListUserPhotos(ctx context.Context, userID uint64) ([]Photo, error)
	SearchPhotos(ctx context.Context, q string) ([]Photo, error)
	UpdateTitle(ctx context.Context, id string, requesterID uint64, title string) (*Photo, error)
	DeletePhoto(ctx context.Context, id string, requesterID uint64) error
	LikePhoto(ctx context.Context, id string, actorID uint64) error
	CommentPhoto(ctx context.Context, id string, actorID uint64, text string) (*Comment, error)
}

type PhotoService struct {
	photoRepo PhotoStore
	mediaRepo MediaStore
	users     UserDirectory
}

func NewPhotoService(p PhotoStore, m MediaStore, u UserDirectory) *PhotoService {
	return &PhotoService{photoRepo: p, mediaRepo: m, users: u}
}

// --------- PHOTO CRUD ---------

// CreatePhoto stores a new photo owned by ownerID. The owner display name
// is snapshotted onto the document at creation time.
func (s *PhotoService) CreatePhoto(ctx context.Context, ownerID uint64, title, imageRef string) (*Photo, error) {
	if verr := common.ValidatePhotoTitle(title); verr != nil {
		return nil, verr
	}
	if imageRef == "" {
		return nil, common.NewValidationError("image is required")
	}

	owner, err := s.lookupUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Photo{
		UserID:    ownerID,
		UserName:  owner.Name,
		Title:     strings.TrimSpace(title),
		Image:     imageRef,
		Likes:     []uint64{},
		Comments:  []Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.photoRepo.CreatePhoto(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PhotoService) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	return s.photoRepo.GetPhotoByID(ctx, id)
}

func (s *PhotoService) ListPhotos(ctx context.Context) ([]Photo, error) {
	return s.photoRepo.ListAllPhotos(ctx)
}

func (s *PhotoService) ListUserPhotos(ctx context.Context, userID uint64) ([]Photo, error) {
	return s.photoRepo.ListUserPhotos(ctx, userID)
}

func (s *PhotoService) SearchPhotos(ctx context.Context, q string) ([]Photo, error) {
	return s.photoRepo.SearchPhotosByTitle(ctx, q)
}

// UpdateTitle changes the title. Only the owner may do this; the persisted
// change is a single write.
func (s *PhotoService) UpdateTitle(ctx context.Context, id string, requesterID uint64, title string) (*Photo, error) {
	p, err := s.photoRepo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsOwner(requesterID) {
		return nil, common.ErrForbidden
	}
	if verr := common.ValidatePhotoTitle(title); verr != nil {
		return nil, verr
	}

	title = strings.TrimSpace(title)
	if err := s.photoRepo.UpdatePhotoTitle(ctx, id, title); err != nil {
		return nil, err
	}
	p.Title = title
	return p, nil
}

// DeletePhoto removes the photo document, owner only. The stored image is
// cleaned up afterwards on a best effort basis: a failed file delete must
// not fail the photo delete.
func (s *PhotoService) DeletePhoto(ctx context.Context, id string, requesterID uint64) error {
	p, err := s.photoRepo.GetPhotoByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsOwner(requesterID) {
		return common.ErrForbidden
	}

	if err := s.photoRepo.DeletePhoto(ctx, id); err != nil {
		return err
	}

	if p.Image != "" {
		_ = s.mediaRepo.DeleteFile(ctx, p.Image)
	}
	return nil
}

// --------- INTERACTIONS ---------

// LikePhoto records a like from actorID. A repeat like from the same user
// is rejected with ErrAlreadyLiked, it does not remove the earlier like.
// Anyone authenticated may like, ownership is never checked here.
func (s *PhotoService) LikePhoto(ctx context.Context, id string, actorID uint64) error {
	return s.photoRepo.AddLike(ctx, id, actorID)
}

// CommentPhoto appends a comment from actorID. The author name and profile
// image are snapshotted into the comment. Likes and comments can only be
// added, there is no edit or removal.
func (s *PhotoService) CommentPhoto(ctx context.Context, id string, actorID uint64, text string) (*Comment, error) {
	if verr := common.ValidateCommentText(text); verr != nil {
		return nil, verr
	}

	actor, err := s.lookupUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	c := Comment{
		UserID:    actorID,
		UserName:  actor.Name,
		UserImage: actor.ProfileImage,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.photoRepo.AddComment(ctx, id, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PhotoService) lookupUser(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %d: %w", userID, err)
	}
	return u, nil
}
