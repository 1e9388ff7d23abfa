package service

import (
	"errors"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestService manages the questionnaire lifecycle up to (but not including)
// completion: starting a test, storing answers, and read/delete operations.
type TestService interface {
	StartTest(userID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	SubmitResponse(userID, testID uint, req dto.ResponseSubmitDTO) (*dto.SubmitAckDTO, error)
	SubmitResponsesBatch(userID, testID uint, req dto.ResponsesBatchDTO) (*dto.SubmitAckDTO, error)
	GetTestDetail(userID, testID uint) (*dto.TestDetailDTO, error)
	ListMyTests(userID uint, skip, limit int) ([]dto.TestListItemDTO, error)
	GetResult(userID, testID uint) (*dto.TestResultDetailDTO, error)
	DeleteTest(userID, testID uint) error
}

type testService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	resultRepo   repository.ResultRepository
	recRepo      repository.RecommendationRepository
}

func NewTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	resultRepo repository.ResultRepository,
	recRepo repository.RecommendationRepository,
) TestService {
	return &testService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		resultRepo:   resultRepo,
		recRepo:      recRepo,
	}
}

func (s *testService) StartTest(userID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	test := &model.Test{
		UserID:          userID,
		Ciclo:           req.Ciclo,
		Genero:          req.Genero,
		Facultad:        req.Facultad,
		Practicasprepro: req.Practicasprepro,
		Status:          model.TestStatusInProgress,
	}
	if err := s.testRepo.Create(test); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartTest: failed to create test")
		return nil, apperror.Internal(err)
	}

	log.Info().Uint("testID", test.ID).Uint("userID", userID).Msg("Test started")
	return s.toTestResponseDTO(test, 0), nil
}

// SubmitResponse stores one answer, overwriting any previous answer to the
// same question. Answers are rejected once the test is completed.
func (s *testService) SubmitResponse(userID, testID uint, req dto.ResponseSubmitDTO) (*dto.SubmitAckDTO, error) {
	test, err := s.loadOwnedTest(userID, testID)
	if err != nil {
		return nil, err
	}

	response, err := s.submitOne(test, req)
	if err != nil {
		return nil, err
	}

	total, err := s.responseRepo.CountByTest(testID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.SubmitAckDTO{
		Message:        "answer saved",
		ResponseID:     response.ID,
		TotalResponses: total,
		Remaining:      int64(model.ExpectedResponses) - total,
	}, nil
}

// SubmitResponsesBatch applies answers sequentially in caller order. The
// batch is deliberately not transactional: a failure partway leaves the
// earlier answers persisted, and since submission is an idempotent upsert the
// caller can simply resend the batch.
func (s *testService) SubmitResponsesBatch(userID, testID uint, req dto.ResponsesBatchDTO) (*dto.SubmitAckDTO, error) {
	test, err := s.loadOwnedTest(userID, testID)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Responses {
		if _, err := s.submitOne(test, item); err != nil {
			return nil, err
		}
	}

	total, err := s.responseRepo.CountByTest(testID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.SubmitAckDTO{
		Message:        "answers saved",
		TotalResponses: total,
		Remaining:      int64(model.ExpectedResponses) - total,
	}, nil
}

func (s *testService) submitOne(test *model.Test, req dto.ResponseSubmitDTO) (*model.TestResponse, error) {
	if test.Status != model.TestStatusInProgress {
		return nil, apperror.InvalidState("test is already completed")
	}

	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}

	existing, err := s.responseRepo.FindByTestAndQuestion(test.ID, req.QuestionID)
	if err == nil {
		existing.AnswerValue = req.AnswerValue
		if err := s.responseRepo.Update(existing); err != nil {
			return nil, apperror.Internal(err)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	response := &model.TestResponse{
		TestID:      test.ID,
		QuestionID:  req.QuestionID,
		AnswerValue: req.AnswerValue,
	}
	if err := s.responseRepo.Create(response); err != nil {
		return nil, apperror.Internal(err)
	}
	return response, nil
}

func (s *testService) GetTestDetail(userID, testID uint) (*dto.TestDetailDTO, error) {
	test, err := s.loadOwnedTest(userID, testID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.FindAllByTest(testID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	details := make([]dto.ResponseDetailDTO, len(responses))
	for i, resp := range responses {
		details[i] = dto.ResponseDetailDTO{
			ID:           resp.ID,
			QuestionID:   resp.QuestionID,
			QuestionKey:  resp.Question.QuestionKey,
			QuestionText: resp.Question.QuestionText,
			AnswerValue:  resp.AnswerValue,
			AnsweredAt:   resp.AnsweredAt,
		}
	}

	return &dto.TestDetailDTO{
		TestResponseDTO: *s.toTestResponseDTO(test, int64(len(responses))),
		Responses:       details,
	}, nil
}

func (s *testService) ListMyTests(userID uint, skip, limit int) ([]dto.TestListItemDTO, error) {
	tests, err := s.testRepo.FindAllByUser(userID, skip, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items := make([]dto.TestListItemDTO, 0, len(tests))
	for i := range tests {
		var item dto.TestListItemDTO
		if err := copier.Copy(&item, &tests[i]); err != nil {
			log.Error().Err(err).Uint("testID", tests[i].ID).Msg("ListMyTests: failed to copy test to DTO")
			continue
		}
		_, err := s.resultRepo.FindByTest(tests[i].ID)
		item.HasResult = err == nil
		items = append(items, item)
	}
	return items, nil
}

func (s *testService) GetResult(userID, testID uint) (*dto.TestResultDetailDTO, error) {
	if _, err := s.loadOwnedTest(userID, testID); err != nil {
		return nil, err
	}

	result, err := s.resultRepo.FindByTest(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("result")
		}
		return nil, apperror.Internal(err)
	}

	recommendations, err := s.recRepo.FindAssignedToResult(result.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return buildResultDTO(result, recommendations), nil
}

func (s *testService) DeleteTest(userID, testID uint) error {
	if _, err := s.loadOwnedTest(userID, testID); err != nil {
		return err
	}
	if err := s.testRepo.Delete(testID); err != nil {
		return apperror.Internal(err)
	}
	log.Info().Uint("testID", testID).Uint("userID", userID).Msg("Test deleted")
	return nil
}

func (s *testService) loadOwnedTest(userID, testID uint) (*model.Test, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("test")
		}
		return nil, apperror.Internal(err)
	}
	if test.UserID != userID {
		return nil, apperror.Forbidden("you do not own this test")
	}
	return test, nil
}

func (s *testService) toTestResponseDTO(test *model.Test, total int64) *dto.TestResponseDTO {
	return &dto.TestResponseDTO{
		ID:                test.ID,
		UserID:            test.UserID,
		Ciclo:             test.Ciclo,
		Genero:            test.Genero,
		Facultad:          test.Facultad,
		Practicasprepro:   test.Practicasprepro,
		Status:            string(test.Status),
		CreatedAt:         test.CreatedAt,
		CompletedAt:       test.CompletedAt,
		TotalResponses:    total,
		ExpectedResponses: model.ExpectedResponses,
	}
}
