package repository

import (
	"github.com/aquispel/burnout-api/internal/model"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	Create(rec *model.Recommendation) error
	FindByID(id uint) (*model.Recommendation, error)
	FindAll(skip, limit int, activeOnly bool, forPositive *bool) ([]model.Recommendation, error)
	FindActiveByPolarity(forPositive bool) ([]model.Recommendation, error)
	Update(rec *model.Recommendation) error
	Delete(id uint) error

	CreateLink(link *model.TestRecommendation) error
	FindAssignedToResult(resultID uint) ([]model.Recommendation, error)

	WithTx(tx *gorm.DB) RecommendationRepository
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) WithTx(tx *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: tx}
}

func (r *recommendationRepository) Create(rec *model.Recommendation) error {
	return r.db.Create(rec).Error
}

func (r *recommendationRepository) FindByID(id uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) FindAll(skip, limit int, activeOnly bool, forPositive *bool) ([]model.Recommendation, error) {
	query := r.db.Model(&model.Recommendation{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if forPositive != nil {
		query = query.Where("for_positive_result = ?", *forPositive)
	}
	var recs []model.Recommendation
	if err := query.Order("created_at desc").Offset(skip).Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) FindActiveByPolarity(forPositive bool) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.db.Where("active = ? AND for_positive_result = ?", true, forPositive).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) Update(rec *model.Recommendation) error {
	return r.db.Save(rec).Error
}

func (r *recommendationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Recommendation{}, id).Error
}

func (r *recommendationRepository) CreateLink(link *model.TestRecommendation) error {
	return r.db.Create(link).Error
}

func (r *recommendationRepository) FindAssignedToResult(resultID uint) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.db.Model(&model.Recommendation{}).
		Joins("JOIN test_recommendations ON test_recommendations.recommendation_id = recommendations.id").
		Where("test_recommendations.test_result_id = ?", resultID).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
