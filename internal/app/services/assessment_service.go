package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/db"
	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/shiningstar/learninglens/internal/diagnostic/careers"
	"github.com/shiningstar/learninglens/internal/diagnostic/exams"
	"github.com/shiningstar/learninglens/internal/diagnostic/mathpath"
	"github.com/shiningstar/learninglens/internal/diagnostic/pathway"
	"github.com/shiningstar/learninglens/internal/diagnostic/questionnaire"
	"github.com/shiningstar/learninglens/internal/diagnostic/recommend"
	"github.com/shiningstar/learninglens/internal/diagnostic/report"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

const (
	courseRecommendationCount = 3
	analysisCacheTTL          = time.Hour
)

// AssessmentService defines the interface for assessment lifecycle operations
type AssessmentService interface {
	CreateAssessment(ctx context.Context, studentID, actorID int64, ipAddress string) (*models.Assessment, error)
	GetAssessmentByID(ctx context.Context, id int64) (*models.Assessment, error)
	GetAssessments(ctx context.Context, studentID int64) ([]*models.Assessment, error)
	DeleteAssessment(ctx context.Context, id, actorID int64, ipAddress string) error
	GetQuestionnaire(ctx context.Context, assessmentID int64) (*dto.QuestionnaireResponse, error)
	SubmitResponses(ctx context.Context, req *dto.SubmitQuestionnaireRequest, actorID int64, ipAddress string) (*models.Assessment, error)
	Analyze(ctx context.Context, assessmentID, actorID int64, ipAddress string) (*report.Profile, error)
	GetProfile(ctx context.Context, assessmentID int64) (*report.Profile, *models.Assessment, error)
}

// assessmentServiceImpl implements AssessmentService
type assessmentServiceImpl struct {
	assessmentRepo *repositories.AssessmentRepository
	studentRepo    *repositories.StudentRepository
	redis          *db.RedisClient
	activity       ActivityLogService
	logger         zerolog.Logger
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(
	assessmentRepo *repositories.AssessmentRepository,
	studentRepo *repositories.StudentRepository,
	redis *db.RedisClient,
	activity ActivityLogService,
	logger zerolog.Logger,
) AssessmentService {
	return &assessmentServiceImpl{
		assessmentRepo: assessmentRepo,
		studentRepo:    studentRepo,
		redis:          redis,
		activity:       activity,
		logger:         logger,
	}
}

// CreateAssessment opens a new pending assessment for a student
func (s *assessmentServiceImpl) CreateAssessment(ctx context.Context, studentID, actorID int64, ipAddress string) (*models.Assessment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	assessment := &models.Assessment{StudentID: studentID}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "assessment_created",
		fmt.Sprintf("created assessment %d for student %d", assessment.ID, studentID), ipAddress)

	return assessment, nil
}

// GetAssessmentByID retrieves an assessment by ID
func (s *assessmentServiceImpl) GetAssessmentByID(ctx context.Context, id int64) (*models.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, id)
}

// GetAssessments lists assessments, optionally filtered by student
func (s *assessmentServiceImpl) GetAssessments(ctx context.Context, studentID int64) ([]*models.Assessment, error) {
	return s.assessmentRepo.GetAll(ctx, studentID)
}

// DeleteAssessment removes an assessment and its cached analysis
func (s *assessmentServiceImpl) DeleteAssessment(ctx context.Context, id, actorID int64, ipAddress string) error {
	if err := s.assessmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.redis.Delete(ctx, analysisCacheKey(id)); err != nil {
		s.logger.Warn().Err(err).Int64("assessmentID", id).Msg("Failed to drop cached analysis")
	}

	s.activity.Record(ctx, &actorID, "assessment_deleted", fmt.Sprintf("deleted assessment %d", id), ipAddress)

	return nil
}

// GetQuestionnaire returns the age-banded question set for an assessment.
// Fetching the questionnaire for a pending assessment starts it.
func (s *assessmentServiceImpl) GetQuestionnaire(ctx context.Context, assessmentID int64) (*dto.QuestionnaireResponse, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, assessment.StudentID)
	if err != nil {
		return nil, err
	}

	if assessment.Status == models.AssessmentPending {
		if err := s.assessmentRepo.UpdateStatus(ctx, assessmentID, models.AssessmentInProgress); err != nil {
			return nil, err
		}
		assessment.Status = models.AssessmentInProgress
	}

	return &dto.QuestionnaireResponse{
		AssessmentID:    assessment.ID,
		StudentID:       student.ID,
		StudentName:     fmt.Sprintf("%s %s", student.FirstName, student.LastName),
		Age:             student.Age,
		Status:          assessment.Status,
		Questions:       questionnaire.QuestionsForAge(student.Age),
		ParentQuestions: questionnaire.ParentQuestions(),
	}, nil
}

// SubmitResponses stores one respondent's answers. The assessment becomes
// completed once the student, parent and teacher have all answered.
func (s *assessmentServiceImpl) SubmitResponses(ctx context.Context, req *dto.SubmitQuestionnaireRequest, actorID int64, ipAddress string) (*models.Assessment, error) {
	role := models.RespondentRole(req.Role)
	switch role {
	case models.RespondentStudent, models.RespondentParent, models.RespondentTeacher:
	default:
		return nil, apperrors.ErrInvalidRespondentRole
	}

	if len(req.Responses) == 0 {
		return nil, fmt.Errorf("%w: responses cannot be empty", apperrors.ErrValidationFailed)
	}

	assessment, err := s.assessmentRepo.GetByID(ctx, req.AssessmentID)
	if err != nil {
		return nil, err
	}

	if len(s.responsesFor(assessment, role)) > 0 {
		return nil, apperrors.ErrResponsesAlreadySet
	}

	student, err := s.studentRepo.GetByID(ctx, assessment.StudentID)
	if err != nil {
		return nil, err
	}

	if err := s.validateResponses(role, req.Responses, student.Age); err != nil {
		return nil, err
	}

	s.setResponses(assessment, role, req.Responses)

	status := models.AssessmentInProgress
	if assessment.HasAllResponses() {
		status = models.AssessmentCompleted
	}
	assessment.Status = status

	if err := s.assessmentRepo.SaveResponses(ctx, assessment.ID, role, req.Responses, status); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "responses_submitted",
		fmt.Sprintf("%s responses for assessment %d", role, assessment.ID), ipAddress)

	return assessment, nil
}

func (s *assessmentServiceImpl) responsesFor(assessment *models.Assessment, role models.RespondentRole) map[string]int {
	switch role {
	case models.RespondentStudent:
		return assessment.StudentResponses
	case models.RespondentParent:
		return assessment.ParentResponses
	case models.RespondentTeacher:
		return assessment.TeacherResponses
	}
	return nil
}

func (s *assessmentServiceImpl) setResponses(assessment *models.Assessment, role models.RespondentRole, responses map[string]int) {
	switch role {
	case models.RespondentStudent:
		assessment.StudentResponses = responses
	case models.RespondentParent:
		assessment.ParentResponses = responses
	case models.RespondentTeacher:
		assessment.TeacherResponses = responses
	}
}

// validateResponses rejects answers referencing questions outside the
// respondent's question set.
func (s *assessmentServiceImpl) validateResponses(role models.RespondentRole, responses map[string]int, age int) error {
	for id, option := range responses {
		if option < 0 {
			return fmt.Errorf("%w: negative option for question %q", apperrors.ErrValidationFailed, id)
		}

		var known bool
		if role == models.RespondentParent {
			_, known = questionnaire.FindParentQuestion(id)
		} else {
			_, known = questionnaire.FindQuestion(id, age)
		}
		if !known {
			return fmt.Errorf("%w: unknown question %q", apperrors.ErrValidationFailed, id)
		}
	}
	return nil
}

// Analyze runs the diagnostic engine over a completed assessment and
// persists the result. Analyzing an already analyzed assessment returns
// the existing profile without recomputing state.
func (s *assessmentServiceImpl) Analyze(ctx context.Context, assessmentID, actorID int64, ipAddress string) (*report.Profile, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	if assessment.Status == models.AssessmentAnalyzed {
		profile, _, err := s.GetProfile(ctx, assessmentID)
		return profile, err
	}

	if assessment.Status != models.AssessmentCompleted {
		return nil, apperrors.ErrAssessmentNotCompleted
	}

	student, err := s.studentRepo.GetByID(ctx, assessment.StudentID)
	if err != nil {
		return nil, err
	}

	profile := buildProfile(assessment.StudentResponses, student.Age)

	result, err := marshalAnalysis(profile)
	if err != nil {
		return nil, err
	}

	if err := s.assessmentRepo.SaveAnalysis(ctx, assessmentID, result); err != nil {
		return nil, err
	}

	if err := s.redis.SetJSON(ctx, analysisCacheKey(assessmentID), profile, analysisCacheTTL); err != nil {
		s.logger.Warn().Err(err).Int64("assessmentID", assessmentID).Msg("Failed to cache analysis result")
	}

	s.activity.Record(ctx, &actorID, "assessment_analyzed", fmt.Sprintf("analyzed assessment %d", assessmentID), ipAddress)

	return &profile, nil
}

// GetProfile returns the diagnostic profile of an analyzed assessment,
// served from cache when possible.
func (s *assessmentServiceImpl) GetProfile(ctx context.Context, assessmentID int64) (*report.Profile, *models.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, nil, err
	}

	if assessment.Status != models.AssessmentAnalyzed {
		return nil, nil, apperrors.ErrAssessmentNotAnalyzed
	}

	var profile report.Profile
	err = s.redis.GetJSON(ctx, analysisCacheKey(assessmentID), &profile)
	if err == nil {
		return &profile, assessment, nil
	}
	if !errors.Is(err, db.ErrCacheMiss) {
		s.logger.Warn().Err(err).Int64("assessmentID", assessmentID).Msg("Failed to read cached analysis")
	}

	// The engine is deterministic, rebuilding from stored responses
	// reproduces the persisted result.
	student, err := s.studentRepo.GetByID(ctx, assessment.StudentID)
	if err != nil {
		return nil, nil, err
	}

	profile = buildProfile(assessment.StudentResponses, student.Age)

	if err := s.redis.SetJSON(ctx, analysisCacheKey(assessmentID), profile, analysisCacheTTL); err != nil {
		s.logger.Warn().Err(err).Int64("assessmentID", assessmentID).Msg("Failed to cache analysis result")
	}

	return &profile, assessment, nil
}

func analysisCacheKey(assessmentID int64) string {
	return fmt.Sprintf("%s%d", db.PrefixAnalysis, assessmentID)
}

// buildProfile runs every stage of the diagnostic engine over one
// response set.
func buildProfile(responses map[string]int, age int) report.Profile {
	result := analysis.Analyze(responses, age)
	pw := pathway.Generate(result, age)

	return report.Profile{
		Result:      result,
		Badges:      analysis.GenerateBadges(result),
		Pathway:     pw,
		Careers:     careers.Suggest(result),
		Courses:     recommend.Courses(result, pw, age, courseRecommendationCount),
		MathPathway: mathpath.Generate(result, age),
		Exams:       exams.Recommend(result, age),
	}
}

func marshalAnalysis(profile report.Profile) (repositories.AnalysisResult, error) {
	var result repositories.AnalysisResult

	fields := []struct {
		dest  *json.RawMessage
		value interface{}
	}{
		{&result.LearningStyles, profile.Result.LearningStyles},
		{&result.Traits, profile.Result.Traits},
		{&result.Interests, profile.Result.Interests},
		{&result.CourseRecommendations, profile.Courses},
		{&result.MathPathway, profile.MathPathway},
		{&result.ExamRecommendations, profile.Exams},
	}

	for _, f := range fields {
		data, err := json.Marshal(f.value)
		if err != nil {
			return result, fmt.Errorf("error serializing analysis result: %w", err)
		}
		*f.dest = data
	}

	return result, nil
}
