package repository

import (
	"github.com/aquispel/burnout-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByKey(key string) (*model.Question, error)
	FindAll(skip, limit int, activeOnly bool) ([]model.Question, error)
	FindAllActive() ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// Creates associated options in the same insert.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order(`question_options."order" ASC`)
	}).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByKey(key string) (*model.Question, error) {
	var question model.Question
	if err := r.db.Where("question_key = ?", key).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(skip, limit int, activeOnly bool) ([]model.Question, error) {
	query := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order(`question_options."order" ASC`)
	})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var questions []model.Question
	if err := query.Order(`questions."order" ASC`).Offset(skip).Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAllActive() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order(`question_options."order" ASC`)
	}).Where("active = ?", true).Order(`questions."order" ASC`).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
