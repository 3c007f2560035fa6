package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gogram/internal/common"
	"gogram/internal/config"
	"gogram/internal/dbmysql"
)

// ---- In-memory fake repository ----

type fakeUserRepo struct {
	byID    map[uint64]*dbmysql.User
	byEmail map[string]*dbmysql.User
	next    uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uint64]*dbmysql.User{},
		byEmail: map[string]*dbmysql.User{},
		next:    1,
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *dbmysql.User) error {
	user.UserID = r.next
	r.next++
	cp := *user
	r.byID[user.UserID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	cp := *user
	r.byID[user.UserID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func newTestService() (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwt := common.NewJWTManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1},
	})
	return NewUserService(repo, jwt), repo
}

// ---- Tests ----

func TestRegister(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name        string
		userName    string
		email       string
		password    string
		wantErr     bool
		errContains string
	}{
		{
			name:     "success",
			userName: "alice",
			email:    "alice@example.com",
			password: "password123",
		},
		{
			name:        "duplicate email",
			userName:    "alice2",
			email:       "alice@example.com",
			password:    "password123",
			wantErr:     true,
			errContains: "in use",
		},
		{
			name:        "short name",
			userName:    "al",
			email:       "al@example.com",
			password:    "password123",
			wantErr:     true,
			errContains: "name",
		},
		{
			name:        "bad email",
			userName:    "carol",
			email:       "not-an-email",
			password:    "password123",
			wantErr:     true,
			errContains: "email",
		},
		{
			name:        "short password",
			userName:    "carol",
			email:       "carol@example.com",
			password:    "123",
			wantErr:     true,
			errContains: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, user.UserID)
			assert.NotEmpty(t, token)
			assert.NotEqual(t, tt.password, user.PasswordHash)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// success
	user, token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.NotEmpty(t, token)

	// wrong password
	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.Error(t, err)
	_, ok := common.AsValidationError(err)
	assert.True(t, ok)

	// unknown email
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.Error(t, err)

	// missing fields
	_, _, err = svc.Login(ctx, "", "")
	require.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Partial update: only bio changes
	updated, err := svc.UpdateProfile(ctx, registered.UserID, "", "hello there", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "hello there", updated.Bio)

	// Name and image
	updated, err = svc.UpdateProfile(ctx, registered.UserID, "alice w", "", "fileid123")
	require.NoError(t, err)
	assert.Equal(t, "alice w", updated.Name)
	assert.Equal(t, "hello there", updated.Bio)
	assert.Equal(t, "fileid123", updated.ProfileImage)

	// Invalid name rejected
	_, err = svc.UpdateProfile(ctx, registered.UserID, "x", "", "")
	require.Error(t, err)

	// Unknown user
	_, err = svc.UpdateProfile(ctx, 999, "somebody", "", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, registered.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)

	_, err = svc.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
