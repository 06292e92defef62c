package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loterialab/sorteos-backend/internal/config"
	"github.com/loterialab/sorteos-backend/internal/models"
)

type fakeAdminUserRepo struct {
	users map[string]*models.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[string]*models.AdminUser)}
}

func (f *fakeAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return user, nil
}

func (f *fakeAdminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	f.users[user.Email] = &models.AdminUser{
		Email:    user.Email,
		Password: user.Password,
		Role:     user.Role,
	}
	return nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAdminUserRepo()
	svc := NewAuthService(repo, authTestConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.RegisterRequest{Email: "ops@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password != "" {
		t.Error("registration response must not echo the password hash")
	}
	if user.Role != "admin" {
		t.Errorf("default role %q, want admin", user.Role)
	}
	if repo.users["ops@example.com"].Password == "s3cret" {
		t.Error("stored password must be hashed")
	}

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" || resp.ExpiresIn != 3600 {
		t.Errorf("unexpected login response: %+v", resp)
	}

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "ops@example.com" || claims["role"] != "admin" {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAdminUserRepo()
	svc := NewAuthService(repo, authTestConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{Email: "ops@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, &models.LoginRequest{Email: "ops@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
}
