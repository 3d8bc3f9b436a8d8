package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinelog/internal/reviews/models"
	id "cinelog/pkg/domain"
	"cinelog/pkg/platform/sentinel"
)

const defaultTable = "reviews"

// PostgresStore persists reviews in PostgreSQL, keyed by the composite
// (movie_id, review_id) primary key.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgres constructs a PostgreSQL-backed review store. An empty table name
// selects the default.
func NewPostgres(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = defaultTable
	}
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) ListByMovie(ctx context.Context, movieID id.MovieID) ([]models.Review, error) {
	query := fmt.Sprintf(`
		SELECT movie_id, review_id, reviewer_id, review_date, content, translated_content
		FROM %s
		WHERE movie_id = $1
		ORDER BY review_id
	`, s.table)
	rows, err := s.db.QueryContext(ctx, query, movieID.Int64())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByKey(ctx context.Context, key models.Key) (models.Review, error) {
	query := fmt.Sprintf(`
		SELECT movie_id, review_id, reviewer_id, review_date, content, translated_content
		FROM %s
		WHERE movie_id = $1 AND review_id = $2
	`, s.table)
	r, err := scanReview(s.db.QueryRowContext(ctx, query, key.MovieID.Int64(), key.ReviewID.Int64()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, sentinel.ErrNotFound
		}
		return models.Review{}, fmt.Errorf("find review: %w", err)
	}
	return r, nil
}

// CreateIfAbsent is the uniqueness-enforcing write behind review id
// generation: two concurrent submissions that land on the same generated id
// produce exactly one row, and the loser regenerates.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, r models.Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (movie_id, review_id, reviewer_id, review_date, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (movie_id, review_id) DO NOTHING
	`, s.table)
	res, err := s.db.ExecContext(ctx, query,
		r.MovieID.Int64(), r.ReviewID.Int64(), r.ReviewerID, r.ReviewDate, r.Content,
	)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresStore) UpdateContent(ctx context.Context, key models.Key, content string) (models.Review, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $3
		WHERE movie_id = $1 AND review_id = $2
		RETURNING movie_id, review_id, reviewer_id, review_date, content, translated_content
	`, s.table)
	r, err := scanReview(s.db.QueryRowContext(ctx, query, key.MovieID.Int64(), key.ReviewID.Int64(), content))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, sentinel.ErrNotFound
		}
		return models.Review{}, fmt.Errorf("update review: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) SetTranslation(ctx context.Context, key models.Key, translated string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET translated_content = $3
		WHERE movie_id = $1 AND review_id = $2
	`, s.table)
	res, err := s.db.ExecContext(ctx, query, key.MovieID.Int64(), key.ReviewID.Int64(), translated)
	if err != nil {
		return fmt.Errorf("set translation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set translation: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key models.Key) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE movie_id = $1 AND review_id = $2`, s.table)
	res, err := s.db.ExecContext(ctx, query, key.MovieID.Int64(), key.ReviewID.Int64())
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (models.Review, error) {
	var (
		r          models.Review
		movieID    int64
		reviewID   int64
		translated sql.NullString
	)
	if err := row.Scan(&movieID, &reviewID, &r.ReviewerID, &r.ReviewDate, &r.Content, &translated); err != nil {
		return models.Review{}, err
	}
	r.MovieID = id.MovieID(movieID)
	r.ReviewID = id.ReviewID(reviewID)
	if translated.Valid {
		r.TranslatedContent = translated.String
	}
	return r, nil
}
