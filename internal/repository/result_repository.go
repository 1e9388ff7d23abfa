package repository

import (
	"github.com/aquispel/burnout-api/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.TestResult) error
	FindByTest(testID uint) (*model.TestResult, error)

	WithTx(tx *gorm.DB) ResultRepository
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

func (r *resultRepository) Create(result *model.TestResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByTest(testID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.Where("test_id = ?", testID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
