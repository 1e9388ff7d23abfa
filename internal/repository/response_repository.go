package repository

import (
	"github.com/aquispel/burnout-api/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.TestResponse) error
	Update(response *model.TestResponse) error
	FindByTestAndQuestion(testID, questionID uint) (*model.TestResponse, error)
	FindAllByTest(testID uint) ([]model.TestResponse, error)
	CountByTest(testID uint) (int64, error)

	// AnswersByKey returns a test's answers keyed by question_key, the shape
	// the ML request builder consumes.
	AnswersByKey(testID uint) (map[string]string, error)

	WithTx(tx *gorm.DB) ResponseRepository
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) WithTx(tx *gorm.DB) ResponseRepository {
	return &responseRepository{db: tx}
}

func (r *responseRepository) Create(response *model.TestResponse) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) Update(response *model.TestResponse) error {
	return r.db.Save(response).Error
}

func (r *responseRepository) FindByTestAndQuestion(testID, questionID uint) (*model.TestResponse, error) {
	var response model.TestResponse
	err := r.db.Where("test_id = ? AND question_id = ?", testID, questionID).First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllByTest(testID uint) ([]model.TestResponse, error) {
	var responses []model.TestResponse
	err := r.db.Preload("Question").
		Where("test_id = ?", testID).
		Order("answered_at ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) CountByTest(testID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.TestResponse{}).Where("test_id = ?", testID).Count(&count).Error
	return count, err
}

func (r *responseRepository) AnswersByKey(testID uint) (map[string]string, error) {
	type row struct {
		QuestionKey string
		AnswerValue string
	}
	var rows []row
	err := r.db.Model(&model.TestResponse{}).
		Select("questions.question_key, test_responses.answer_value").
		Joins("JOIN questions ON questions.id = test_responses.question_id").
		Where("test_responses.test_id = ?", testID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(rows))
	for _, r := range rows {
		answers[r.QuestionKey] = r.AnswerValue
	}
	return answers, nil
}
