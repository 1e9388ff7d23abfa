package service

import (
	"context"
	"errors"
	"time"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompletionService finalizes a test: it checks completeness, flips the test
// to completed, obtains the ML prediction, persists the result and assigns
// the matching recommendations. The whole sequence runs in one transaction,
// so a predictor failure leaves the test in_progress and retriable instead
// of completed-without-result.
type CompletionService interface {
	Complete(ctx context.Context, userID, testID uint) (*dto.TestResultDetailDTO, error)
}

type completionService struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	responseRepo repository.ResponseRepository
	resultRepo   repository.ResultRepository
	recRepo      repository.RecommendationRepository
	mlClient     MLClient
	location     *time.Location
}

func NewCompletionService(
	cfg *config.Config,
	db *gorm.DB,
	testRepo repository.TestRepository,
	responseRepo repository.ResponseRepository,
	resultRepo repository.ResultRepository,
	recRepo repository.RecommendationRepository,
	mlClient MLClient,
) CompletionService {
	loc, err := time.LoadLocation(cfg.CompletionTimezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.CompletionTimezone).Msg("Unknown completion timezone, falling back to UTC")
		loc = time.UTC
	}
	return &completionService{
		db:           db,
		testRepo:     testRepo,
		responseRepo: responseRepo,
		resultRepo:   resultRepo,
		recRepo:      recRepo,
		mlClient:     mlClient,
		location:     loc,
	}
}

func (s *completionService) Complete(ctx context.Context, userID, testID uint) (*dto.TestResultDetailDTO, error) {
	var resultDTO *dto.TestResultDetailDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		testRepo := s.testRepo.WithTx(tx)
		responseRepo := s.responseRepo.WithTx(tx)
		resultRepo := s.resultRepo.WithTx(tx)
		recRepo := s.recRepo.WithTx(tx)

		test, err := testRepo.FindByID(testID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("test")
			}
			return apperror.Internal(err)
		}
		if test.UserID != userID {
			return apperror.Forbidden("you do not own this test")
		}
		if test.Status == model.TestStatusCompleted {
			return apperror.InvalidState("test is already completed")
		}

		count, err := responseRepo.CountByTest(testID)
		if err != nil {
			return apperror.Internal(err)
		}
		if count < model.ExpectedResponses {
			return apperror.Incomplete(model.ExpectedResponses, int(count))
		}

		// Flip the status inside the transaction: a predictor failure below
		// rolls this back together with everything else.
		now := time.Now().In(s.location)
		test.Status = model.TestStatusCompleted
		test.CompletedAt = &now
		if err := testRepo.Update(test); err != nil {
			return apperror.Internal(err)
		}

		answers, err := responseRepo.AnswersByKey(testID)
		if err != nil {
			return apperror.Internal(err)
		}

		mlResp, err := s.mlClient.Predict(ctx, BuildPredictionRequest(test, answers))
		if err != nil {
			log.Error().Err(err).Uint("testID", testID).Msg("Complete: prediction failed, rolling back completion")
			return err
		}

		if _, err := resultRepo.FindByTest(testID); err == nil {
			return apperror.Conflict("this test already has a result")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Internal(err)
		}

		prediction := model.PredictionNegative
		if mlResp.Resultado == string(model.PredictionPositive) {
			prediction = model.PredictionPositive
		}

		result := &model.TestResult{
			TestID:       testID,
			Prediction:   prediction,
			Probability:  mlResp.Probabilidad,
			ModelVersion: mlResp.ModelVersion,
		}
		if err := resultRepo.Create(result); err != nil {
			return apperror.Internal(err)
		}

		recommendations, err := s.assignRecommendations(recRepo, result.ID, prediction)
		if err != nil {
			return err
		}

		resultDTO = buildResultDTO(result, recommendations)

		log.Info().
			Uint("testID", testID).
			Str("prediction", string(prediction)).
			Float64("probability", mlResp.Probabilidad).
			Int("recommendations", len(recommendations)).
			Msg("Test completed with prediction")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultDTO, nil
}

// assignRecommendations links every active recommendation of the matching
// polarity to the result. An empty match is a valid outcome, not an error.
func (s *completionService) assignRecommendations(
	recRepo repository.RecommendationRepository,
	resultID uint,
	prediction model.Prediction,
) ([]model.Recommendation, error) {
	recommendations, err := recRepo.FindActiveByPolarity(prediction.IsPositive())
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for _, rec := range recommendations {
		link := &model.TestRecommendation{
			TestResultID:     resultID,
			RecommendationID: rec.ID,
		}
		if err := recRepo.CreateLink(link); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return recommendations, nil
}

func buildResultDTO(result *model.TestResult, recommendations []model.Recommendation) *dto.TestResultDetailDTO {
	recDTOs := make([]dto.RecommendationResponseDTO, len(recommendations))
	for i := range recommendations {
		copier.Copy(&recDTOs[i], &recommendations[i])
	}

	return &dto.TestResultDetailDTO{
		ID:              result.ID,
		TestID:          result.TestID,
		Prediction:      string(result.Prediction),
		Probability:     result.Probability,
		ModelVersion:    result.ModelVersion,
		PredictedAt:     result.PredictedAt,
		Recommendations: recDTOs,
	}
}
