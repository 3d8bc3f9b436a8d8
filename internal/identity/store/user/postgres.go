package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinelog/internal/identity/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

const defaultTable = "users"

// PostgresStore persists user records in PostgreSQL, keyed by normalized email.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgres constructs a PostgreSQL-backed user store. An empty table name
// selects the default.
func NewPostgres(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = defaultTable
	}
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	query := fmt.Sprintf(`
		SELECT email, user_id, name, password_hash, created_at
		FROM %s
		WHERE email = $1
	`, s.table)
	var (
		u       models.User
		rawID   string
		rawHash sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, email).Scan(&u.Email, &rawID, &u.Name, &rawHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, sentinel.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	userID, err := id.ParseUserID(rawID)
	if err != nil {
		return models.User{}, fmt.Errorf("find user: stored id invalid: %w", err)
	}
	u.UserID = userID
	if rawHash.Valid {
		u.PasswordHash = rawHash.String
	}
	return u, nil
}

// CreateIfEmailAvailable inserts conditionally on the email primary key; a
// duplicate maps to the conflict sentinel rather than an error from the driver.
func (s *PostgresStore) CreateIfEmailAvailable(ctx context.Context, u models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (email, user_id, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, s.table)
	res, err := s.db.ExecContext(ctx, query, u.Email, u.UserID.String(), u.Name, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrConflict
	}
	return nil
}
