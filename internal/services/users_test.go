package services

import (
	"context"
	"errors"
	"testing"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	conn := newTestDB(t)
	s := NewUserService(conn)
	ctx := context.Background()

	user, err := s.Register(ctx, " alice ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("want trimmed username, got %q", user.Username)
	}
	if user.Password == "secret" {
		t.Error("password must be stored hashed")
	}

	if _, err := s.Register(ctx, "alice", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("want ErrUsernameTaken, got %v", err)
	}

	got, err := s.Authenticate(ctx, "alice", "secret")
	if err != nil || got.ID != user.ID {
		t.Errorf("want alice authenticated, got %+v, %v", got, err)
	}
	if _, err := s.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestUserService_RegisterRejectsBlank(t *testing.T) {
	s := NewUserService(newTestDB(t))
	if _, err := s.Register(context.Background(), "  ", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Register(context.Background(), "bob", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Get(t *testing.T) {
	conn := newTestDB(t)
	alice := createUser(t, conn, "alice")
	s := NewUserService(conn)

	got, err := s.Get(context.Background(), alice.ID)
	if err != nil || got.Username != "alice" {
		t.Errorf("want alice, got %+v, %v", got, err)
	}
	if _, err := s.Get(context.Background(), 42); !errors.Is(err, ErrNoActor) {
		t.Errorf("want ErrNoActor, got %v", err)
	}
}
