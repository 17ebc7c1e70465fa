package services

import (
	"context"
	"fmt"

	"github.com/ngvthanh/classform/internal/app/models"
)

// StudentReader is the roster access the directory service needs
type StudentReader interface {
	GetAll(ctx context.Context) ([]models.Student, error)
}

// StudentService defines the interface for roster directory operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentReader
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentReader) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// ListStudents returns the full roster ordered by roll-call ordinal.
// The roster is seeded out-of-band; there is no pagination or filtering.
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}
