package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

const mockUserID = "7f3f1c2a-8a4b-4d6e-912e-55aa01b2c3d4"

func TestCreateUser(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, email, password_hash, created_at")).
		WithArgs("host@example.com", "hashed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(mockUserID, "host@example.com", "hashed", now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_roles (user_id, role) VALUES ($1, $2)")).
		WithArgs(mockUserID, "host").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles (id, full_name) VALUES ($1, $2)")).
		WithArgs(mockUserID, "Test Host").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := repo.Create(context.Background(), "Test Host", "host@example.com", "hashed", "host")
	require.NoError(t, err)
	require.Equal(t, mockUserID, u.ID)
	require.Equal(t, "host", u.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT u.id, u.email, u.password_hash, u.created_at, ur.role FROM users u JOIN user_roles ur ON ur.user_id = u.id WHERE u.email = $1")).
		WithArgs("player@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "role"}).
			AddRow(mockUserID, "player@example.com", "hashed", now, "player"))

	u, err := repo.FindByEmail(context.Background(), "player@example.com")
	require.NoError(t, err)
	require.Equal(t, "player", u.Role)

	// unknown email
	mock.ExpectQuery(regexp.QuoteMeta("SELECT u.id, u.email, u.password_hash, u.created_at, ur.role FROM users u JOIN user_roles ur ON ur.user_id = u.id WHERE u.email = $1")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "taken@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetProfile(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, avatar_url, preferred_sports, credits, created_at, updated_at FROM profiles WHERE id = $1")).
		WithArgs(mockUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "avatar_url", "preferred_sports", "credits", "created_at", "updated_at"}).
			AddRow(mockUserID, "Mary-Jane O'Brien", nil, pq.StringArray{"cricket"}, 12.5, now, now))

	p, err := repo.GetProfile(context.Background(), mockUserID)
	require.NoError(t, err)
	require.Equal(t, "Mary-Jane O'Brien", p.FullName)
	require.Equal(t, 12.5, p.Credits)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	name := "New Name"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles SET full_name = COALESCE($2, full_name), avatar_url = COALESCE($3, avatar_url), preferred_sports = COALESCE($4, preferred_sports), updated_at = NOW() WHERE id = $1 RETURNING id, full_name, avatar_url, preferred_sports, credits, created_at, updated_at")).
		WithArgs(mockUserID, &name, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "avatar_url", "preferred_sports", "credits", "created_at", "updated_at"}).
			AddRow(mockUserID, name, nil, pq.StringArray{}, 0.0, now, now))

	p, err := repo.UpdateProfile(context.Background(), mockUserID, &UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	require.Equal(t, name, p.FullName)
}
