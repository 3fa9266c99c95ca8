package service

import (
	"errors"
	"fmt"

	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"
	"go-dropship-api/pkg/jwt"
	"go-dropship-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenIssuer signs access tokens for authenticated users. Injected so tests
// can substitute a stub.
type TokenIssuer interface {
	Generate(user *model.User) (string, error)
}

type jwtIssuer struct{}

func NewJWTIssuer() TokenIssuer {
	return jwtIssuer{}
}

func (jwtIssuer) Generate(user *model.User) (string, error) {
	return jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
}

type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(req *LoginRequest) (*LoginResult, error)
}

type RegisterRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	OutletName string `json:"outlet_name" validate:"required,max=255"`
	Address    string `json:"address" validate:"max=255"`
	Phone      string `json:"phone" validate:"max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,oneof=admin dropshipper warehouse"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult is the login payload: user identity plus a signed token.
type LoginResult struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Role    model.Role `json:"role"`
	Token   string     `json:"token"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailUsed
	}

	role := model.RoleDropshipper
	if req.Role != "" {
		role = model.Role(req.Role)
	}

	user := &model.User{
		Role:       role,
		Name:       req.Name,
		OutletName: req.OutletName,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	user.CreatedBy = req.Email
	user.UpdatedBy = req.Email

	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(req *LoginRequest) (*LoginResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:      user.ID,
		Name:    user.Name,
		Address: user.Address,
		Phone:   user.Phone,
		Email:   user.Email,
		Role:    user.Role,
		Token:   token,
	}, nil
}
