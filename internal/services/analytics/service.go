// Package analytics wraps the analytics and reporting endpoints of the
// AlphaDesk API. Report files are opaque blobs; the client never parses them.
package analytics

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// Service issues analytics requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates an analytics service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// Summary retrieves the aggregate analytics for the current user.
func (s *Service) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary
	if err := s.client.Get(ctx, "/analytics/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Reports retrieves the list of generated reports.
func (s *Service) Reports(ctx context.Context) ([]*models.Report, error) {
	var reports []*models.Report
	if err := s.client.Get(ctx, "/analytics/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GenerateReport asks the backend to generate a new report.
func (s *Service) GenerateReport(ctx context.Context, input models.ReportInput) (*models.Report, error) {
	var report models.Report
	if err := s.client.Post(ctx, "/analytics/reports", input, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DownloadReport fetches a report file as bytes, returning the filename from
// Content-Disposition when the backend provides one.
func (s *Service) DownloadReport(ctx context.Context, id string) ([]byte, string, error) {
	path := fmt.Sprintf("/analytics/reports/%s/download", url.PathEscape(id))
	return s.client.Download(ctx, path)
}

// Ensure Service implements AnalyticsService
var _ interfaces.AnalyticsService = (*Service)(nil)
