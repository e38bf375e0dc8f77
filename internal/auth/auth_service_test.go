package auth_test

import (
	"context"
	"testing"

	"go-engnet/internal/auth"
	autherrors "go-engnet/internal/auth/errors"
	"go-engnet/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn      func(ctx context.Context, u *user.User) error
	findAllFn     func(ctx context.Context) ([]user.User, error)
	findByIDFn    func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	updateFn      func(ctx context.Context, u *user.User) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Name:     "Maria Souza",
		Email:    "maria@engnet.com.br",
		Role:     "MEMBER",
		Status:   user.StatusActive,
		Password: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success", func(t *testing.T) {
		u := activeUser(t, "segredo123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, u.Email, email)
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, u.Email, "segredo123")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.Equal(t, u.Name, resp.Nome)
		assert.Equal(t, "MEMBER", resp.Role)
	})

	t.Run("wrong password is indistinguishable from unknown email", func(t *testing.T) {
		u := activeUser(t, "segredo123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, errWrongPassword := svc.Login(ctx, u.Email, "errada")

		repo.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		}
		_, _, _, errUnknownEmail := svc.Login(ctx, "ninguem@engnet.com.br", "qualquer")

		assert.ErrorIs(t, errWrongPassword, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		u := activeUser(t, "segredo123")
		u.Status = user.StatusInactive
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, u.Email, "segredo123")

		assert.ErrorIs(t, err, autherrors.ErrInactiveUser)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("round trip", func(t *testing.T) {
		u := activeUser(t, "segredo123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				assert.Equal(t, u.ID.String(), id)
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		_, refresh, _, err := svc.Login(ctx, u.Email, "segredo123")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, u.Email, resp.Email)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{})

		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{})

		_, err := svc.GetMe(ctx, uuid.New().String())

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
