package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/shiningstar/learninglens/internal/diagnostic/report"
)

// ReportService defines the interface for report operations
type ReportService interface {
	GenerateReports(ctx context.Context, assessmentID, actorID int64, ipAddress string) (*dto.GeneratedReportsResponse, error)
	GetReportByID(ctx context.Context, id int64) (*models.Report, error)
	GetReportsByAssessment(ctx context.Context, assessmentID int64) ([]*models.Report, error)
	MarkDelivered(ctx context.Context, id, actorID int64, ipAddress string) error
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportRepo        *repositories.ReportRepository
	assessmentService AssessmentService
	activity          ActivityLogService
	logger            zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo *repositories.ReportRepository,
	assessmentService AssessmentService,
	activity ActivityLogService,
	logger zerolog.Logger,
) ReportService {
	return &reportServiceImpl{
		reportRepo:        reportRepo,
		assessmentService: assessmentService,
		activity:          activity,
		logger:            logger,
	}
}

// GenerateReports builds the student, parent and teacher reports for an
// analyzed assessment. Regenerating replaces any previously stored set.
func (s *reportServiceImpl) GenerateReports(ctx context.Context, assessmentID, actorID int64, ipAddress string) (*dto.GeneratedReportsResponse, error) {
	profile, assessment, err := s.assessmentService.GetProfile(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	var comparison *analysis.ParentComparison
	if len(assessment.ParentResponses) > 0 {
		c := analysis.CompareParentResponses(assessment.ParentResponses, profile.Result)
		comparison = &c
	}

	contents := map[models.ReportType]interface{}{
		models.ReportStudent: report.BuildStudent(*profile),
		models.ReportTeacher: report.BuildTeacher(*profile, comparison),
	}
	if comparison != nil {
		contents[models.ReportParent] = report.BuildParent(*profile, *comparison)
	} else {
		contents[models.ReportParent] = report.BuildParent(*profile, analysis.ParentComparison{})
	}

	now := time.Now()
	ordered := []models.ReportType{models.ReportStudent, models.ReportParent, models.ReportTeacher}
	records := make([]*models.Report, 0, len(ordered))

	for _, reportType := range ordered {
		content, err := json.Marshal(contents[reportType])
		if err != nil {
			return nil, fmt.Errorf("error serializing %s report: %w", reportType, err)
		}

		records = append(records, &models.Report{
			AssessmentID: assessmentID,
			Type:         reportType,
			Code:         report.Code(report.Audience(reportType), now),
			Content:      content,
		})
	}

	if err := s.reportRepo.ReplaceForAssessment(ctx, assessmentID, records); err != nil {
		return nil, err
	}

	responses := make([]dto.ReportResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, *dto.NewReportResponse(rec))
	}

	s.activity.Record(ctx, &actorID, "reports_generated",
		fmt.Sprintf("generated %d reports for assessment %d", len(responses), assessmentID), ipAddress)

	return &dto.GeneratedReportsResponse{
		AssessmentID: assessmentID,
		Reports:      responses,
	}, nil
}

// GetReportByID retrieves a report by ID
func (s *reportServiceImpl) GetReportByID(ctx context.Context, id int64) (*models.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// GetReportsByAssessment lists the reports stored for an assessment
func (s *reportServiceImpl) GetReportsByAssessment(ctx context.Context, assessmentID int64) ([]*models.Report, error) {
	return s.reportRepo.GetByAssessmentID(ctx, assessmentID)
}

// MarkDelivered flags a report as handed over to its audience
func (s *reportServiceImpl) MarkDelivered(ctx context.Context, id, actorID int64, ipAddress string) error {
	if err := s.reportRepo.MarkDelivered(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &actorID, "report_delivered", fmt.Sprintf("marked report %d delivered", id), ipAddress)

	return nil
}
