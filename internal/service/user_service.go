package service

import (
	"errors"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(userID uint) (*dto.UserDetailResponseDTO, error)
	UpdateProfile(userID uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error)
	ChangePassword(userID uint, req dto.ChangePasswordDTO) error
	ListUsers(skip, limit int) ([]dto.UserResponseDTO, error)
	SetActive(userID uint, active bool) (*dto.UserResponseDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
	testRepo repository.TestRepository
}

func NewUserService(userRepo repository.UserRepository, testRepo repository.TestRepository) UserService {
	return &userService{userRepo: userRepo, testRepo: testRepo}
}

func (s *userService) GetProfile(userID uint) (*dto.UserDetailResponseDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	total, err := s.testRepo.CountByUser(userID, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	completed := model.TestStatusCompleted
	completedCount, err := s.testRepo.CountByUser(userID, &completed)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var resp dto.UserDetailResponseDTO
	if err := copier.Copy(&resp.UserResponseDTO, user); err != nil {
		return nil, apperror.Internal(err)
	}
	resp.Role = string(user.Role)
	resp.TotalTests = total
	resp.CompletedTests = completedCount
	return &resp, nil
}

func (s *userService) UpdateProfile(userID uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(*req.Username); err == nil {
			return nil, apperror.Conflict("username is already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Internal(err)
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, apperror.Conflict("email is already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Internal(err)
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperror.Internal(err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Internal(err)
	}
	resp.Role = string(user.Role)
	return &resp, nil
}

func (s *userService) ChangePassword(userID uint, req dto.ChangePasswordDTO) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return apperror.Unauthorized("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(user); err != nil {
		return apperror.Internal(err)
	}
	log.Info().Uint("userID", userID).Msg("Password changed")
	return nil
}

func (s *userService) ListUsers(skip, limit int) ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll(skip, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resp := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		if err := copier.Copy(&resp[i], &users[i]); err != nil {
			return nil, apperror.Internal(err)
		}
		resp[i].Role = string(users[i].Role)
	}
	return resp, nil
}

func (s *userService) SetActive(userID uint, active bool) (*dto.UserResponseDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	user.Active = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperror.Internal(err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Internal(err)
	}
	resp.Role = string(user.Role)
	return &resp, nil
}

func (s *userService) findUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
