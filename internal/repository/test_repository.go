package repository

import (
	"github.com/aquispel/burnout-api/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindAllByUser(userID uint, skip, limit int) ([]model.Test, error)
	CountByUser(userID uint, status *model.TestStatus) (int64, error)
	Update(test *model.Test) error
	Delete(id uint) error

	// WithTx returns a copy of the repository bound to tx, so a service can
	// run several repository calls in one transaction.
	WithTx(tx *gorm.DB) TestRepository
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllByUser(userID uint, skip, limit int) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(skip).Limit(limit).
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) CountByUser(userID uint, status *model.TestStatus) (int64, error) {
	query := r.db.Model(&model.Test{}).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) Delete(id uint) error {
	return r.db.Select("Responses", "Result").Delete(&model.Test{ID: id}).Error
}
