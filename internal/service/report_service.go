package service

import (
	"context"

	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/report"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportService feeds the admin results dashboard and its CSV export.
type ReportService interface {
	Dashboard(ctx context.Context, filters report.Filters) (*report.Aggregation, error)
	ExportCSV(ctx context.Context, filters report.Filters) (string, error)
}

type reportService struct {
	results repository.ResultRepository
	users   repository.UserRepository
	format  report.Format
}

func NewReportService(results repository.ResultRepository, users repository.UserRepository, cfg *config.Config) ReportService {
	return &reportService{
		results: results,
		users:   users,
		format: report.Format{
			DateLayout:     cfg.Report.DateLayout,
			DateTimeLayout: cfg.Report.DateTimeLayout,
			Location:       cfg.Report.Location(),
		},
	}
}

func (s *reportService) Dashboard(ctx context.Context, filters report.Filters) (*report.Aggregation, error) {
	results, users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	agg := report.Aggregate(results, users, filters, s.format)
	return &agg, nil
}

// ExportCSV exports the rows currently selected by filters.
func (s *reportService) ExportCSV(ctx context.Context, filters report.Filters) (string, error) {
	agg, err := s.Dashboard(ctx, filters)
	if err != nil {
		return "", err
	}
	return report.ToCSV(agg.Rows, s.format)
}

// load reads users on every call so department changes show up immediately.
func (s *reportService) load(ctx context.Context) ([]model.Result, map[string]model.User, error) {
	results, err := s.results.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Report: failed to list results")
		return nil, nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Report: failed to list users")
		return nil, nil, err
	}
	byName := make(map[string]model.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return results, byName, nil
}
