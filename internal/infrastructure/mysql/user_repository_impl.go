package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/farhanadit/go-user-api/internal/domain/entity"
	"github.com/farhanadit/go-user-api/internal/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, display_name, email, my_property
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Email, &u.MyProperty); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, email, my_property
		FROM users
		WHERE id = ?
	`, id)

	if err := row.Scan(&u.ID, &u.DisplayName, &u.Email, &u.MyProperty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	// Single-statement insert; the id is already assigned by the entity.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, display_name, email, my_property)
		VALUES (?, ?, ?, ?)
	`, u.ID, u.DisplayName, u.Email, u.MyProperty)
	return err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET display_name = ?, email = ?, my_property = ?
		WHERE id = ?
	`, u.DisplayName, u.Email, u.MyProperty, u.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a missing row from an update that changed nothing:
		// MySQL reports zero affected rows for both.
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
