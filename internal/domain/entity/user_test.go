package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhanadit/go-user-api/internal/domain/entity"
)

type stubIDGenerator struct{ id string }

func (s stubIDGenerator) NewID() string { return s.id }

func TestNewUser(t *testing.T) {
	gen := stubIDGenerator{id: "fixed-id"}

	u, err := entity.NewUser(gen, "Ada", "ada@example.com", 42)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", u.ID)
	assert.Equal(t, "Ada", u.DisplayName)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, 42, u.MyProperty)
}

func TestNewUserRequiredFields(t *testing.T) {
	gen := stubIDGenerator{id: "fixed-id"}

	tests := []struct {
		name        string
		displayName string
		email       string
		wantErr     error
	}{
		{"missing display name", "", "ada@example.com", entity.ErrDisplayNameRequired},
		{"missing email", "Ada", "", entity.ErrEmailRequired},
		{"missing both reports display name first", "", "", entity.ErrDisplayNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := entity.NewUser(gen, tt.displayName, tt.email, 0)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUUIDGeneratorIssuesDistinctIDs(t *testing.T) {
	gen := entity.UUIDGenerator{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id issued: %s", id)
		seen[id] = true
	}
}
