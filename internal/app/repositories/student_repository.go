package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngvthanh/classform/internal/app/models"
)

// StudentRepository handles database operations for the student roster
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetAll retrieves the full roster ordered by roll-call ordinal
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, stt, name
		FROM students
		ORDER BY stt ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.STT,
			&student.Name,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Upsert inserts a roster entry if its ordinal is not present yet.
// Seeding runs on every startup, so existing rows are left untouched.
func (r *StudentRepository) Upsert(ctx context.Context, stt int, name string) error {
	query := `
		INSERT INTO students (stt, name)
		VALUES ($1, $2)
		ON CONFLICT (stt) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, stt, name); err != nil {
		return fmt.Errorf("error seeding student %d: %w", stt, err)
	}

	return nil
}

// Count returns the roster size
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
