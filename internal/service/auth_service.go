package service

import (
	"errors"
	"time"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.UserResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.TokenResponseDTO, error)
}

// Claims is the JWT payload issued at login and checked by the auth middleware.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperror.Conflict("username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperror.Conflict("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.RoleUser,
		Active:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperror.Internal(err)
	}

	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("User registered")

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Internal(err)
	}
	resp.Role = string(user.Role)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.TokenResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid username or password")
		}
		return nil, apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized("invalid username or password")
	}

	if !user.Active {
		return nil, apperror.Forbidden("account is inactive, contact an administrator")
	}

	token, expiresIn, err := s.issueToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

func (s *authService) issueToken(user *model.User) (string, *int, error) {
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.Username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	var expiresIn *int
	if s.cfg.JWT.ExpireMinutes > 0 {
		expiry := time.Duration(s.cfg.JWT.ExpireMinutes) * time.Minute
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(expiry))
		seconds := int(expiry.Seconds())
		expiresIn = &seconds
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", nil, err
	}
	return signed, expiresIn, nil
}
