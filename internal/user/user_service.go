package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"gogram/internal/common"
	"gogram/internal/dbmysql"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	Profile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, name, bio, profileImage string) (*dbmysql.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
	jwt      *common.JWTManager
}

func NewUserService(userRepo UserRepository, jwt *common.JWTManager) UserService {
	return &userService{userRepo: userRepo, jwt: jwt}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*dbmysql.User, string, error) {
	if verr := common.ValidateName(name); verr != nil {
		return nil, "", verr
	}
	if verr := common.ValidateEmail(email); verr != nil {
		return nil, "", verr
	}
	if verr := common.ValidatePassword(password); verr != nil {
		return nil, "", verr
	}

	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.userRepo.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.NewValidationError("email already in use")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.UserID, user.Name)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if email == "" || password == "" {
		return nil, "", common.NewValidationError("email and password are required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", common.NewValidationError("user not found")
	}
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.NewValidationError("invalid password")
	}

	token, err := s.jwt.GenerateToken(user.UserID, user.Name)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Profile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile applies only the fields that were provided; empty values
// leave the stored ones unchanged.
func (s *userService) UpdateProfile(ctx context.Context, userID uint64, name, bio, profileImage string) (*dbmysql.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		if verr := common.ValidateName(name); verr != nil {
			return nil, verr
		}
		user.Name = strings.TrimSpace(name)
	}
	if bio != "" {
		user.Bio = bio
	}
	if profileImage != "" {
		user.ProfileImage = profileImage
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
