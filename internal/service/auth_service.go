package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthService interface {
	Login(email, password, ipAddress string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	Logout(userID uuid.UUID) error
	Heartbeat(userID uuid.UUID) error
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
	Role  string             `json:"role"`
}

type TokenValidationResponse struct {
	User model.UserResponse `json:"user"`
	Role string             `json:"role"`
}

type authService struct {
	userRepo repository.UserRepository
	recorder *audit.Recorder
}

func NewAuthService(userRepo repository.UserRepository, recorder *audit.Recorder) AuthService {
	return &authService{
		userRepo: userRepo,
		recorder: recorder,
	}
}

func (s *authService) Login(email, password, ipAddress string) (*LoginResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Single session: rotate token version, refresh last seen
	newTokenVersion := uuid.New().String()
	now := time.Now()
	user.TokenVersion = newTokenVersion
	user.LastSeenAt = &now

	if err := s.userRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	// 5. Generate JWT token. Role travels in the claims for display only;
	// authorization re-resolves it on every request.
	token, err := jwt.GenerateToken(user.ID, user.Email, user.DisplayName(), user.RoleCode(), newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	// 6. The sign-in audit entry is enqueued, not written inline
	s.recorder.Record(model.AuditLog{
		UserID:     user.ID.String(),
		UserName:   user.DisplayName(),
		Action:     model.ActionCreate,
		Resource:   model.ResourceSession,
		ResourceID: user.ID.String(),
		IPAddress:  ipAddress,
		Details:    "Signed in",
	})

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
		Role:  user.RoleCode(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	// 1. Validate JWT token
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// 2. Find user by ID from token claims
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if user is still active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Check against DB for strict session (TokenVersion)
	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	return &TokenValidationResponse{
		User: user.ToResponse(),
		Role: user.RoleCode(),
	}, nil
}

// Logout rotates the token version so the presented token is dead
// server-side
func (s *authService) Logout(userID uuid.UUID) error {
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) Heartbeat(userID uuid.UUID) error {
	return s.userRepo.UpdateLastSeen(userID)
}
