package services

import (
	"context"
	"fmt"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/pkg/export"
)

// SubmissionReader is the store access the reporting service needs
type SubmissionReader interface {
	GetAllDetailed(ctx context.Context) ([]models.SubmissionDetail, error)
}

// ReportService defines the interface for admin reporting operations.
// Authorization happens before these are reached; both operations read
// the same joined result set.
type ReportService interface {
	ListSubmissions(ctx context.Context) ([]models.SubmissionDetail, error)
	ExportCSV(ctx context.Context) (string, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	submissionRepo SubmissionReader
}

// NewReportService creates a new report service instance
func NewReportService(submissionRepo SubmissionReader) ReportService {
	return &reportServiceImpl{
		submissionRepo: submissionRepo,
	}
}

// ListSubmissions returns every submission enriched with roster info,
// ordered by student ordinal ascending (unresolvable students last),
// then creation time descending.
func (s *reportServiceImpl) ListSubmissions(ctx context.Context) ([]models.SubmissionDetail, error) {
	details, err := s.submissionRepo.GetAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving submissions: %w", err)
	}

	return details, nil
}

// ExportCSV renders the same rows as the downloadable report document
func (s *reportServiceImpl) ExportCSV(ctx context.Context) (string, error) {
	details, err := s.submissionRepo.GetAllDetailed(ctx)
	if err != nil {
		return "", fmt.Errorf("error exporting submissions: %w", err)
	}

	return export.RenderCSV(details), nil
}
