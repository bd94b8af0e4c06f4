package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the user, the role grant and an empty profile in one
// transaction so a half-registered account can never exist.
func (r *repository) Create(ctx context.Context, fullName, email, passwordHash, role string) (*User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var u User
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, password_hash, created_at`,
		email, passwordHash,
	).StructScan(&u)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		u.ID, role,
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (id, full_name) VALUES ($1, $2)`,
		u.ID, fullName,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	u.Role = role
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.created_at, ur.role
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.email = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.created_at, ur.role
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.id = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT id, full_name, avatar_url, preferred_sports, credits, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*Profile, error) {
	query := `
		UPDATE profiles
		SET full_name        = COALESCE($2, full_name),
		    avatar_url       = COALESCE($3, avatar_url),
		    preferred_sports = COALESCE($4, preferred_sports),
		    updated_at       = NOW()
		WHERE id = $1
		RETURNING id, full_name, avatar_url, preferred_sports, credits, created_at, updated_at
	`

	var sports interface{}
	if req.PreferredSports != nil {
		sports = pq.Array(req.PreferredSports)
	}

	var p Profile
	err := r.db.QueryRowxContext(ctx, query, userID, req.FullName, req.AvatarURL, sports).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
