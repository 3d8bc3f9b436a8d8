package movie

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

const defaultTable = "movies"

// PostgresStore persists movies in PostgreSQL. Pure I/O; id generation and
// retry policy belong to the services.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgres constructs a PostgreSQL-backed movie store. An empty table name
// selects the default.
func NewPostgres(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = defaultTable
	}
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Movie, error) {
	query := fmt.Sprintf(`
		SELECT id, title, overview, genres, release_date, production_companies, runtime, poster_url, cast_members
		FROM %s
		ORDER BY id
	`, s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var out []models.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("list movies: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, movieID id.MovieID) (models.Movie, error) {
	query := fmt.Sprintf(`
		SELECT id, title, overview, genres, release_date, production_companies, runtime, poster_url, cast_members
		FROM %s
		WHERE id = $1
	`, s.table)
	m, err := scanMovie(s.db.QueryRowContext(ctx, query, movieID.Int64()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, sentinel.ErrNotFound
		}
		return models.Movie{}, fmt.Errorf("find movie: %w", err)
	}
	return m, nil
}

// CreateIfAbsent relies on the primary key for uniqueness: ON CONFLICT DO
// NOTHING turns a duplicate id into zero affected rows, which surfaces as the
// conflict sentinel for the caller to regenerate against.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, m models.Movie) error {
	castJSON, err := json.Marshal(m.Cast)
	if err != nil {
		return fmt.Errorf("marshal cast: %w", err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, overview, genres, release_date, production_companies, runtime, poster_url, cast_members)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, s.table)
	res, err := s.db.ExecContext(ctx, query,
		m.ID.Int64(), m.Title, m.Overview, pq.Array(m.Genres), m.ReleaseDate,
		pq.Array(m.ProductionCompanies), nullableInt(m.Runtime), nullableString(m.PosterURL), castJSON,
	)
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresStore) UpdateMedia(ctx context.Context, movieID id.MovieID, cast []models.CastMember, posterURL string) (models.Movie, error) {
	castJSON, err := json.Marshal(cast)
	if err != nil {
		return models.Movie{}, fmt.Errorf("marshal cast: %w", err)
	}
	query := fmt.Sprintf(`
		UPDATE %s
		SET cast_members = $2, poster_url = $3
		WHERE id = $1
		RETURNING id, title, overview, genres, release_date, production_companies, runtime, poster_url, cast_members
	`, s.table)
	m, err := scanMovie(s.db.QueryRowContext(ctx, query, movieID.Int64(), castJSON, nullableString(posterURL)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, sentinel.ErrNotFound
		}
		return models.Movie{}, fmt.Errorf("update movie media: %w", err)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var (
		m         models.Movie
		movieID   int64
		companies pq.StringArray
		genres    pq.StringArray
		runtime   sql.NullInt64
		poster    sql.NullString
		castJSON  []byte
	)
	if err := row.Scan(&movieID, &m.Title, &m.Overview, &genres, &m.ReleaseDate, &companies, &runtime, &poster, &castJSON); err != nil {
		return models.Movie{}, err
	}
	m.ID = id.MovieID(movieID)
	m.Genres = genres
	m.ProductionCompanies = companies
	if runtime.Valid {
		m.Runtime = int(runtime.Int64)
	}
	if poster.Valid {
		m.PosterURL = poster.String
	}
	if len(castJSON) > 0 {
		if err := json.Unmarshal(castJSON, &m.Cast); err != nil {
			return models.Movie{}, fmt.Errorf("unmarshal cast: %w", err)
		}
	}
	return m, nil
}

func nullableInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
