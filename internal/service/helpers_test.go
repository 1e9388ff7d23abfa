package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aquispel/burnout-api/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The pool is capped at one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Test{},
		&model.TestResponse{},
		&model.TestResult{},
		&model.Recommendation{},
		&model.TestRecommendation{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     model.RoleUser,
		Active:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedQuestions creates n active questions keyed pregunta1..preguntaN.
func seedQuestions(t *testing.T, db *gorm.DB, n int) []model.Question {
	t.Helper()
	questions := make([]model.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = model.Question{
			QuestionKey:  fmt.Sprintf("pregunta%d", i+1),
			QuestionText: fmt.Sprintf("Enunciado %d", i+1),
			Order:        i + 1,
			Active:       true,
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func seedTest(t *testing.T, db *gorm.DB, userID uint) *model.Test {
	t.Helper()
	test := &model.Test{
		UserID:          userID,
		Ciclo:           7,
		Genero:          "Femenino",
		Facultad:        "Ingeniería de Sistemas",
		Practicasprepro: "Sí",
		Status:          model.TestStatusInProgress,
	}
	require.NoError(t, db.Create(test).Error)
	return test
}

// answerQuestions stores one answer per given question directly in the store.
func answerQuestions(t *testing.T, db *gorm.DB, testID uint, questions []model.Question, value string) {
	t.Helper()
	for _, q := range questions {
		require.NoError(t, db.Create(&model.TestResponse{
			TestID:      testID,
			QuestionID:  q.ID,
			AnswerValue: value,
		}).Error)
	}
}

func seedRecommendation(t *testing.T, db *gorm.DB, title string, forPositive, active bool) *model.Recommendation {
	t.Helper()
	rec := &model.Recommendation{
		Title:             title,
		Description:       "desc " + title,
		ForPositiveResult: forPositive,
		Active:            active,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

// stubMLClient records calls and returns a canned response or error.
type stubMLClient struct {
	resp    *MLPredictionResponse
	err     error
	calls   int
	lastReq MLPredictionRequest
}

func (s *stubMLClient) Predict(_ context.Context, req MLPredictionRequest) (*MLPredictionResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}
