package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Profile carries the public identity of an account. Its ID equals the
// account's user ID (1:1); a caller may only mutate their own profile.
type Profile struct {
	id        uuid.UUID
	username  string
	fullName  string
	avatarURL string
	role      string
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(userID uuid.UUID, username, fullName, avatarURL, role string) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}

	now := time.Now()

	return &Profile{
		id:        userID,
		username:  username,
		fullName:  fullName,
		avatarURL: avatarURL,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(
	id uuid.UUID,
	username string,
	fullName string,
	avatarURL string,
	role string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("profile ID is required")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &Profile{
		id:        id,
		username:  username,
		fullName:  fullName,
		avatarURL: avatarURL,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Username() string     { return p.username }
func (p *Profile) FullName() string     { return p.fullName }
func (p *Profile) AvatarURL() string    { return p.avatarURL }
func (p *Profile) Role() string         { return p.role }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// BelongsTo reports whether the profile belongs to the given caller.
func (p *Profile) BelongsTo(userID uuid.UUID) bool {
	return p.id == userID
}

func (p *Profile) UpdateUsername(username string) error {
	if len(username) == 0 {
		return fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	p.username = username
	p.updatedAt = time.Now()
	return nil
}

func (p *Profile) UpdateFullName(fullName string) {
	p.fullName = fullName
	p.updatedAt = time.Now()
}

func (p *Profile) UpdateAvatarURL(avatarURL string) {
	p.avatarURL = avatarURL
	p.updatedAt = time.Now()
}

func (p *Profile) UpdateRole(role string) {
	p.role = role
	p.updatedAt = time.Now()
}
