package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		phone    string
		wantErr  error
	}{
		{
			name:     "valid user",
			email:    "amina@example.com",
			password: "correct-horse-battery",
			phone:    "+254700000000",
		},
		{
			name:     "valid user without phone",
			email:    "amina@example.com",
			password: "correct-horse-battery",
		},
		{
			name:     "empty email",
			email:    "",
			password: "correct-horse-battery",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without domain dot",
			email:    "amina@example",
			password: "correct-horse-battery",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without local part",
			email:    "@example.com",
			password: "correct-horse-battery",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "amina@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			email:    "amina@example.com",
			password: string(make([]byte, 73)),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := NewUser(tc.email, tc.password, tc.phone)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID == uuid.Nil {
				t.Error("expected a generated user ID")
			}
			if user.IsPremium {
				t.Error("new users must not be premium")
			}
			if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
				t.Error("expected timestamps to be set")
			}
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a hash.
	user := &User{
		ID:             uuid.New(),
		Email:          "amina@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := user.Validate(); err != nil {
		t.Errorf("stored user should validate, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}
