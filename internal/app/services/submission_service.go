package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/pkg/apperrors"
)

// SubmissionWriter is the store access the intake service needs
type SubmissionWriter interface {
	Create(ctx context.Context, submission *models.Submission) error
}

// SubmissionService defines the interface for intake operations
type SubmissionService interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (*models.Submission, error)
}

// submissionServiceImpl implements the SubmissionService interface
type submissionServiceImpl struct {
	submissionRepo SubmissionWriter
	logger         zerolog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(submissionRepo SubmissionWriter, logger zerolog.Logger) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// Submit records one form response. The student reference must parse to an
// integer identity before any store access; everything else is recorded
// as sent. The wizard is the only place birth date, favorite animal and
// image choice are checked, so a non-wizard client can submit any value.
// There is no dedup: retried requests create additional rows.
func (s *submissionServiceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (*models.Submission, error) {
	studentID, err := req.StudentID.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: studentId must be a number", apperrors.ErrValidationFailed)
	}

	submission := &models.Submission{
		StudentID:      &studentID,
		BirthDate:      req.BirthDate,
		FavoriteAnimal: req.FavoriteAnimal,
		SelectedImage:  req.SelectedImage,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		s.logger.Error().Err(err).Int64("studentId", studentID).Msg("Error saving submission")
		return nil, fmt.Errorf("error saving submission: %w", err)
	}

	s.logger.Info().Int64("submissionId", submission.ID).Int64("studentId", studentID).Msg("Submission recorded")
	return submission, nil
}
