package service

import (
	"errors"
	"fmt"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService manages the question catalog. Mutations are admin-only
// (enforced at the route level); users only read the active set.
type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	ListQuestions(skip, limit int, activeOnly bool) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.questionRepo.FindByKey(req.QuestionKey); err == nil {
		return nil, apperror.Conflict(fmt.Sprintf("a question with key %q already exists", req.QuestionKey))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	question := &model.Question{
		QuestionKey:  req.QuestionKey,
		QuestionText: req.QuestionText,
		Category:     req.Category,
		Order:        req.Order,
		Active:       true,
	}
	if req.Active != nil {
		question.Active = *req.Active
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.QuestionOption{
			OptionText:  opt.OptionText,
			OptionValue: opt.OptionValue,
			Order:       opt.Order,
		})
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, apperror.Internal(err)
	}

	log.Info().Uint("questionID", question.ID).Str("key", question.QuestionKey).Msg("Question created")
	return toQuestionDTO(question)
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}
	return toQuestionDTO(question)
}

func (s *questionService) ListQuestions(skip, limit int, activeOnly bool) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindAll(skip, limit, activeOnly)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		qDTO, err := toQuestionDTO(&questions[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *qDTO)
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question")
		}
		return nil, apperror.Internal(err)
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Category != nil {
		question.Category = req.Category
	}
	if req.Order != nil {
		question.Order = *req.Order
	}
	if req.Active != nil {
		question.Active = *req.Active
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, apperror.Internal(err)
	}
	return toQuestionDTO(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("question")
		}
		return apperror.Internal(err)
	}
	if err := s.questionRepo.Delete(id); err != nil {
		return apperror.Internal(err)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	return nil
}

func toQuestionDTO(question *model.Question) (*dto.QuestionResponseDTO, error) {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, apperror.Internal(err)
	}
	return &resp, nil
}
