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

// RecommendationService manages the advice catalog read by the completion
// workflow. Deactivating an entry only affects future assignments; links
// already created keep pointing at it.
type RecommendationService interface {
	CreateRecommendation(req dto.RecommendationCreateDTO) (*dto.RecommendationResponseDTO, error)
	GetRecommendation(id uint) (*dto.RecommendationResponseDTO, error)
	ListRecommendations(skip, limit int, activeOnly bool, forPositive *bool) ([]dto.RecommendationResponseDTO, error)
	UpdateRecommendation(id uint, req dto.RecommendationUpdateDTO) (*dto.RecommendationResponseDTO, error)
	DeleteRecommendation(id uint) error
}

type recommendationService struct {
	recRepo repository.RecommendationRepository
}

func NewRecommendationService(recRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{recRepo: recRepo}
}

func (s *recommendationService) CreateRecommendation(req dto.RecommendationCreateDTO) (*dto.RecommendationResponseDTO, error) {
	rec := &model.Recommendation{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		ForPositiveResult: true,
		Active:            true,
	}
	if req.ForPositiveResult != nil {
		rec.ForPositiveResult = *req.ForPositiveResult
	}
	if req.Active != nil {
		rec.Active = *req.Active
	}

	if err := s.recRepo.Create(rec); err != nil {
		return nil, apperror.Internal(err)
	}

	log.Info().Uint("recommendationID", rec.ID).Bool("for_positive", rec.ForPositiveResult).Msg("Recommendation created")
	return toRecommendationDTO(rec)
}

func (s *recommendationService) GetRecommendation(id uint) (*dto.RecommendationResponseDTO, error) {
	rec, err := s.findRecommendation(id)
	if err != nil {
		return nil, err
	}
	return toRecommendationDTO(rec)
}

func (s *recommendationService) ListRecommendations(skip, limit int, activeOnly bool, forPositive *bool) ([]dto.RecommendationResponseDTO, error) {
	recs, err := s.recRepo.FindAll(skip, limit, activeOnly, forPositive)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resp := make([]dto.RecommendationResponseDTO, 0, len(recs))
	for i := range recs {
		recDTO, err := toRecommendationDTO(&recs[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *recDTO)
	}
	return resp, nil
}

func (s *recommendationService) UpdateRecommendation(id uint, req dto.RecommendationUpdateDTO) (*dto.RecommendationResponseDTO, error) {
	rec, err := s.findRecommendation(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.Category != nil {
		rec.Category = req.Category
	}
	if req.ForPositiveResult != nil {
		rec.ForPositiveResult = *req.ForPositiveResult
	}
	if req.Active != nil {
		rec.Active = *req.Active
	}

	if err := s.recRepo.Update(rec); err != nil {
		return nil, apperror.Internal(err)
	}
	return toRecommendationDTO(rec)
}

func (s *recommendationService) DeleteRecommendation(id uint) error {
	if _, err := s.findRecommendation(id); err != nil {
		return err
	}
	if err := s.recRepo.Delete(id); err != nil {
		return apperror.Internal(err)
	}
	log.Info().Uint("recommendationID", id).Msg("Recommendation deleted")
	return nil
}

func (s *recommendationService) findRecommendation(id uint) (*model.Recommendation, error) {
	rec, err := s.recRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("recommendation")
		}
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

func toRecommendationDTO(rec *model.Recommendation) (*dto.RecommendationResponseDTO, error) {
	var resp dto.RecommendationResponseDTO
	if err := copier.Copy(&resp, rec); err != nil {
		return nil, apperror.Internal(err)
	}
	return &resp, nil
}
