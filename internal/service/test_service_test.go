package service

import (
	"testing"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(db *gorm.DB) TestService {
	return NewTestService(
		repository.NewTestRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewResponseRepository(db),
		repository.NewResultRepository(db),
		repository.NewRecommendationRepository(db),
	)
}

func TestStartTest_CreatesInProgressTest(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	svc := newTestService(db)

	resp, err := svc.StartTest(user.ID, dto.TestCreateDTO{
		Ciclo:           5,
		Genero:          "Masculino",
		Facultad:        "Ingeniería Industrial",
		Practicasprepro: "No",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, string(model.TestStatusInProgress), resp.Status)
	assert.EqualValues(t, 0, resp.TotalResponses)
	assert.Equal(t, model.ExpectedResponses, resp.ExpectedResponses)
	assert.Nil(t, resp.CompletedAt)
}

func TestSubmitResponse_UpsertsSameQuestion(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 3)
	test := seedTest(t, db, user.ID)
	svc := newTestService(db)

	first, err := svc.SubmitResponse(user.ID, test.ID, dto.ResponseSubmitDTO{
		QuestionID:  questions[0].ID,
		AnswerValue: "Nunca",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.TotalResponses)
	assert.EqualValues(t, model.ExpectedResponses-1, first.Remaining)

	// Answering the same question again overwrites, it does not duplicate.
	second, err := svc.SubmitResponse(user.ID, test.ID, dto.ResponseSubmitDTO{
		QuestionID:  questions[0].ID,
		AnswerValue: "Siempre",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, second.TotalResponses)
	assert.Equal(t, first.ResponseID, second.ResponseID)

	var stored model.TestResponse
	require.NoError(t, db.First(&stored, second.ResponseID).Error)
	assert.Equal(t, "Siempre", stored.AnswerValue)
}

func TestSubmitResponse_RejectsCompletedTest(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 1)
	test := seedTest(t, db, user.ID)
	require.NoError(t, db.Model(test).Update("status", model.TestStatusCompleted).Error)
	svc := newTestService(db)

	_, err := svc.SubmitResponse(user.ID, test.ID, dto.ResponseSubmitDTO{
		QuestionID:  questions[0].ID,
		AnswerValue: "Nunca",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
}

func TestSubmitResponse_UnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	test := seedTest(t, db, user.ID)
	svc := newTestService(db)

	_, err := svc.SubmitResponse(user.ID, test.ID, dto.ResponseSubmitDTO{
		QuestionID:  42,
		AnswerValue: "Nunca",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSubmitResponsesBatch_ReportsProgress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 3)
	test := seedTest(t, db, user.ID)
	svc := newTestService(db)

	batch := dto.ResponsesBatchDTO{Responses: []dto.ResponseSubmitDTO{
		{QuestionID: questions[0].ID, AnswerValue: "Nunca"},
		{QuestionID: questions[1].ID, AnswerValue: "A veces"},
		{QuestionID: questions[2].ID, AnswerValue: "Siempre"},
	}}

	ack, err := svc.SubmitResponsesBatch(user.ID, test.ID, batch)
	require.NoError(t, err)
	assert.EqualValues(t, 3, ack.TotalResponses)
	assert.EqualValues(t, model.ExpectedResponses-3, ack.Remaining)
}

func TestSubmitResponsesBatch_PartialFailureKeepsEarlierAnswers(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 2)
	test := seedTest(t, db, user.ID)
	svc := newTestService(db)

	batch := dto.ResponsesBatchDTO{Responses: []dto.ResponseSubmitDTO{
		{QuestionID: questions[0].ID, AnswerValue: "Nunca"},
		{QuestionID: 999, AnswerValue: "Siempre"},
		{QuestionID: questions[1].ID, AnswerValue: "A veces"},
	}}

	_, err := svc.SubmitResponsesBatch(user.ID, test.ID, batch)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	// Answers before the bad entry stay stored; resending the batch is safe
	// because submission is an upsert.
	var count int64
	require.NoError(t, db.Model(&model.TestResponse{}).Where("test_id = ?", test.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetTestDetail_JoinsQuestions(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 2)
	test := seedTest(t, db, user.ID)
	answerQuestions(t, db, test.ID, questions, "A veces")
	svc := newTestService(db)

	detail, err := svc.GetTestDetail(user.ID, test.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, detail.TotalResponses)
	require.Len(t, detail.Responses, 2)
	assert.Equal(t, "pregunta1", detail.Responses[0].QuestionKey)
	assert.Equal(t, "Enunciado 1", detail.Responses[0].QuestionText)
	assert.Equal(t, "A veces", detail.Responses[0].AnswerValue)
}

func TestListMyTests_FlagsTestsWithResults(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	withResult := seedTest(t, db, user.ID)
	withoutResult := seedTest(t, db, user.ID)
	require.NoError(t, db.Create(&model.TestResult{
		TestID:       withResult.ID,
		Prediction:   model.PredictionPositive,
		Probability:  0.8,
		ModelVersion: "v1",
	}).Error)
	svc := newTestService(db)

	items, err := svc.ListMyTests(user.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[uint]bool{}
	for _, item := range items {
		byID[item.ID] = item.HasResult
	}
	assert.True(t, byID[withResult.ID])
	assert.False(t, byID[withoutResult.ID])
}

func TestGetResult_NotFoundBeforeCompletion(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	test := seedTest(t, db, user.ID)
	svc := newTestService(db)

	_, err := svc.GetResult(user.ID, test.ID)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetResult_IncludesAssignedRecommendations(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	test := seedTest(t, db, user.ID)
	rec := seedRecommendation(t, db, "Pausas activas", true, true)
	result := &model.TestResult{
		TestID:       test.ID,
		Prediction:   model.PredictionPositive,
		Probability:  0.8,
		ModelVersion: "v1",
	}
	require.NoError(t, db.Create(result).Error)
	require.NoError(t, db.Create(&model.TestRecommendation{
		TestResultID:     result.ID,
		RecommendationID: rec.ID,
	}).Error)
	svc := newTestService(db)

	got, err := svc.GetResult(user.ID, test.ID)
	require.NoError(t, err)
	assert.Equal(t, "SI", got.Prediction)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Pausas activas", got.Recommendations[0].Title)
}

func TestGetResult_DeactivatedRecommendationStaysAssigned(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	test := seedTest(t, db, user.ID)
	rec := seedRecommendation(t, db, "Pausas activas", true, true)
	result := &model.TestResult{
		TestID:       test.ID,
		Prediction:   model.PredictionPositive,
		Probability:  0.8,
		ModelVersion: "v1",
	}
	require.NoError(t, db.Create(result).Error)
	require.NoError(t, db.Create(&model.TestRecommendation{
		TestResultID:     result.ID,
		RecommendationID: rec.ID,
	}).Error)

	// Deactivation only affects future assignments, not existing links.
	require.NoError(t, db.Model(rec).Update("active", false).Error)
	svc := newTestService(db)

	got, err := svc.GetResult(user.ID, test.ID)
	require.NoError(t, err)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Pausas activas", got.Recommendations[0].Title)
}

func TestDeleteTest_RemovesAnswersAndResult(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	questions := seedQuestions(t, db, 2)
	test := seedTest(t, db, user.ID)
	answerQuestions(t, db, test.ID, questions, "Nunca")
	require.NoError(t, db.Create(&model.TestResult{
		TestID:       test.ID,
		Prediction:   model.PredictionNegative,
		Probability:  0.2,
		ModelVersion: "v1",
	}).Error)
	svc := newTestService(db)

	require.NoError(t, svc.DeleteTest(user.ID, test.ID))

	var tests, responses, results int64
	require.NoError(t, db.Model(&model.Test{}).Count(&tests).Error)
	require.NoError(t, db.Model(&model.TestResponse{}).Count(&responses).Error)
	require.NoError(t, db.Model(&model.TestResult{}).Count(&results).Error)
	assert.Zero(t, tests)
	assert.Zero(t, responses)
	assert.Zero(t, results)
}

func TestDeleteTest_ForeignTestForbidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")
	test := seedTest(t, db, owner.ID)
	svc := newTestService(db)

	err := svc.DeleteTest(intruder.ID, test.ID)
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
