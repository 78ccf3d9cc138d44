package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

const minPasswordLength = 6

// PasswordHasher abstracts the credential hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the authentication account. Everything public about a user lives
// on its Profile; the account itself only carries credentials.
type User struct {
	id           uuid.UUID
	email        string
	passwordHash string
	createdAt    time.Time
}

func NewUser(email string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &User{
		id:        uuid.New(),
		email:     email,
		createdAt: time.Now(),
	}, nil
}

func ReconstructUser(id uuid.UUID, email, passwordHash string, createdAt time.Time) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// SetPassword validates and hashes the plaintext password.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	return nil
}

// VerifyPassword checks the plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}
