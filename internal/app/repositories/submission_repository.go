package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngvthanh/classform/internal/app/models"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Helper function to get nullable string from value
func getNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Create inserts one submission and fills in the store-assigned identity
// and creation timestamp. There is no idempotency key: a retried insert
// produces a second row.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (student_id, birth_date, favorite_animal, selected_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		submission.StudentID,
		getNullString(submission.BirthDate),
		getNullString(submission.FavoriteAnimal),
		getNullString(submission.SelectedImage),
	).Scan(&submission.ID, &submission.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating submission: %w", err)
	}

	return nil
}

// detailedSelect builds the joined listing query. The ordering is part
// of the read contract: ordinal ascending with unresolvable students
// last, creation time descending within a student.
func (r *SubmissionRepository) detailedSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"sub.id", "sub.student_id", "sub.birth_date", "sub.favorite_animal",
		"sub.selected_image", "sub.created_at",
		"st.stt", "COALESCE(st.name, '') AS student_name",
	).
		From("submissions sub").
		LeftJoin("students st ON sub.student_id = st.id").
		OrderBy("st.stt ASC NULLS LAST", "sub.created_at DESC")
}

// GetAllDetailed retrieves every submission joined with its student's
// roster entry.
func (r *SubmissionRepository) GetAllDetailed(ctx context.Context) ([]models.SubmissionDetail, error) {
	sqlQuery, args, err := r.detailedSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.SubmissionDetail
	for rows.Next() {
		var (
			detail         models.SubmissionDetail
			birthDate      *time.Time
			favoriteAnimal sql.NullString
			selectedImage  sql.NullString
		)

		if err := rows.Scan(
			&detail.ID,
			&detail.StudentID,
			&birthDate,
			&favoriteAnimal,
			&selectedImage,
			&detail.CreatedAt,
			&detail.STT,
			&detail.Name,
		); err != nil {
			return nil, err
		}

		if birthDate != nil {
			detail.BirthDate = birthDate.Format("2006-01-02")
		}
		detail.FavoriteAnimal = favoriteAnimal.String
		detail.SelectedImage = selectedImage.String

		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
