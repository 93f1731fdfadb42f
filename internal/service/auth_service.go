package service

import (
	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/pkg/jwt"
	"go-depo-catalog/pkg/validator"

	"fmt"

	"github.com/google/uuid"
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(req *model.User, password string) (*model.User, error)
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*model.UserResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.CodeForbidden, "user account is inactive")
	}
	if !user.CheckPassword(password) {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid email or password")
	}

	// Single session: rotating the token version invalidates older tokens.
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, err, "failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, string(user.Role), user.VendorID, newTokenVersion)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, err, "failed to generate token")
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

// Register creates a customer or vendor account. Privileged roles are never
// self-assignable.
func (s *authService) Register(req *model.User, password string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if req.Role == "" {
		req.Role = model.RoleCustomer
	}
	if req.Role != model.RoleCustomer && req.Role != model.RoleVendor {
		return nil, apperr.New(apperr.CodeValidation, "only customer and vendor accounts can self-register")
	}
	if len(password) < 6 {
		return nil, apperr.New(apperr.CodeValidation, "password must be at least 6 characters")
	}
	if err := req.SetPassword(password); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, err, "failed to hash password")
	}
	req.IsActive = true
	if err := s.userRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, "email already registered")
	}
	return req, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.New(apperr.CodeNotFound, "user not found")
	}
	if !user.CheckPassword(oldPassword) {
		return apperr.New(apperr.CodeUnauthorized, "current password is incorrect")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return apperr.Wrap(apperr.CodeInternal, err, "failed to hash new password")
	}
	if err := s.userRepo.Update(user); err != nil {
		return mapStoreErr(err, "")
	}
	return nil
}

func (s *authService) ValidateToken(tokenString string) (*model.UserResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "invalid or expired token")
	}
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "user not found")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.CodeForbidden, "user account is inactive")
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperr.New(apperr.CodeUnauthorized, "session expired (logged in on another device)")
	}
	resp := user.ToResponse()
	return &resp, nil
}
