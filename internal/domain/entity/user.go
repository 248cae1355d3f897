package entity

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDisplayNameRequired = errors.New("display name is required")
	ErrEmailRequired       = errors.New("email is required")
)

// User is the single aggregate of this service. The identifier is assigned
// once at construction and never reassigned.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	MyProperty  int    `json:"myProperty"`
}

// IDGenerator issues identifiers for new users. Injected so tests can use
// deterministic ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production IDGenerator backed by random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// NewUser builds a User with a freshly generated id. DisplayName and Email
// must be non-empty; MyProperty is an opaque passthrough value.
func NewUser(gen IDGenerator, displayName, email string, myProperty int) (*User, error) {
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	return &User{
		ID:          gen.NewID(),
		DisplayName: displayName,
		Email:       email,
		MyProperty:  myProperty,
	}, nil
}
