package repository

import (
	"context"
	"errors"

	"github.com/farhanadit/go-user-api/internal/domain/entity"
)

// ErrNotFound is returned when no row matches the given identifier.
var ErrNotFound = errors.New("not found")

// UserRepository defines the persistence operations for users. Connectivity
// and constraint failures surface as-is; callers handle them.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
