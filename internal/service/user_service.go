package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/logger"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrInvalidRole  = errors.New("invalid role, must be 'admin' or 'legal_officer'")
	ErrSelfDeletion = errors.New("you cannot delete your own account")
	ErrAdminExists  = errors.New("an admin account already exists")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error)
	DeleteUser(userID uuid.UUID, actor Actor) (*model.UserResponse, error)
	BootstrapAdmin(req *BootstrapAdminRequest) (*model.UserResponse, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

// Actor identifies the admin performing a provisioning call
type Actor struct {
	ID        uuid.UUID
	Name      string
	IPAddress string
}

type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"fullName" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
}

type UpdateUserRequest struct {
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type BootstrapAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	resolver *RoleResolver
	recorder *audit.Recorder
	log      *logger.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	resolver *RoleResolver,
	recorder *audit.Recorder,
	log *logger.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		resolver: resolver,
		recorder: recorder,
		log:      log,
	}
}

// CreateUser provisions an account: identity record, profile row, role
// row. The three writes run as a saga; failure of a later step deletes
// the identity record created by the first, so a retry with the same
// email succeeds.
func (s *userService) CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error) {
	// 1. Validate request before any write
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 2. Check if email already exists
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	department := req.Department
	if department == "" {
		department = "Legal"
	}

	user := &model.User{
		Email:    req.Email,
		IsActive: true,
	}
	user.CreatedBy = actor.ID.String()
	user.UpdatedBy = actor.ID.String()
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.provision(user, req.FullName, department, req.Role); err != nil {
		return nil, err
	}

	s.recorder.Record(model.AuditLog{
		UserID:     actor.ID.String(),
		UserName:   actor.Name,
		Action:     model.ActionCreate,
		Resource:   model.ResourceUser,
		ResourceID: user.ID.String(),
		IPAddress:  actor.IPAddress,
		Details:    fmt.Sprintf("Created user %s (%s)", req.Email, req.Role),
	})

	return s.GetUserByID(user.ID)
}

// provision runs the three-step account saga shared by CreateUser and
// BootstrapAdmin.
func (s *userService) provision(user *model.User, fullName, department, role string) error {
	steps := []sagaStep{
		{
			name: "create identity",
			run: func() error {
				return s.userRepo.Create(user)
			},
			compensate: func() error {
				return s.userRepo.Delete(user.ID)
			},
		},
		{
			name: "create profile",
			run: func() error {
				return s.userRepo.CreateProfile(&model.Profile{
					UserID:     user.ID,
					FullName:   fullName,
					Email:      user.Email,
					Department: department,
				})
			},
		},
		{
			name: "assign role",
			run: func() error {
				return s.roleRepo.Create(&model.UserRole{UserID: user.ID, Role: role})
			},
		},
	}

	return runSaga(steps, func(stepName string, cerr error) {
		// Rollback failed: the identity record is orphaned. Leave a trace
		// in both the log and the audit trail rather than retrying.
		s.log.Error("provisioning rollback failed, identity record orphaned",
			"step", stepName, "user_id", user.ID.String(), "email", user.Email, "error", cerr)
		s.recorder.Record(model.AuditLog{
			UserID:     user.ID.String(),
			UserName:   user.Email,
			Action:     model.ActionDelete,
			Resource:   model.ResourceUser,
			ResourceID: user.ID.String(),
			Details:    fmt.Sprintf("Rollback of step '%s' failed, identity record orphaned: %v", stepName, cerr),
		})
	})
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error) {
	// 1. Validate role if provided
	if req.Role != "" && !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 2. Resolve target
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Conditionally update profile fields
	if req.FullName != "" || req.Department != "" {
		fields := map[string]interface{}{}
		if req.FullName != "" {
			fields["full_name"] = req.FullName
		}
		if req.Department != "" {
			fields["department"] = req.Department
		}
		if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
			return nil, errors.New("failed to update user profile")
		}
	}

	// 4. Role change via upsert so there is no window without a role row
	if req.Role != "" {
		if err := s.roleRepo.Upsert(userID, req.Role); err != nil {
			return nil, errors.New("failed to update user role")
		}
		s.resolver.Invalidate(userID)
	}

	user.UpdatedBy = actor.ID.String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.recorder.Record(model.AuditLog{
		UserID:     actor.ID.String(),
		UserName:   actor.Name,
		Action:     model.ActionUpdate,
		Resource:   model.ResourceUser,
		ResourceID: userID.String(),
		IPAddress:  actor.IPAddress,
		Details:    fmt.Sprintf("Updated user %s", user.Email),
	})

	return s.GetUserByID(userID)
}

func (s *userService) DeleteUser(userID uuid.UUID, actor Actor) (*model.UserResponse, error) {
	// 1. Admins cannot delete themselves
	if userID == actor.ID {
		return nil, ErrSelfDeletion
	}

	// 2. Confirm the target exists
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	deleted := user.ToResponse()

	// 3. Delete; dependent profile/role rows go with the identity record
	if err := s.userRepo.Delete(userID); err != nil {
		return nil, err
	}
	s.resolver.Invalidate(userID)

	s.recorder.Record(model.AuditLog{
		UserID:     actor.ID.String(),
		UserName:   actor.Name,
		Action:     model.ActionDelete,
		Resource:   model.ResourceUser,
		ResourceID: userID.String(),
		IPAddress:  actor.IPAddress,
		Details:    fmt.Sprintf("Deleted user %s (%s)", deleted.Email, deleted.FullName),
	})

	return &deleted, nil
}

// BootstrapAdmin creates the first admin account. Guarded by the absence
// of any existing admin role row.
func (s *userService) BootstrapAdmin(req *BootstrapAdminRequest) (*model.UserResponse, error) {
	hasAdmin, err := s.roleRepo.HasAdmin()
	if err != nil {
		return nil, errors.New("failed to check existing admins")
	}
	if hasAdmin {
		return nil, ErrAdminExists
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{
		Email:    req.Email,
		IsActive: true,
	}
	user.CreatedBy = "bootstrap"
	user.UpdatedBy = "bootstrap"
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.provision(user, req.FullName, "Legal", model.RoleAdmin); err != nil {
		return nil, err
	}

	s.log.Info("bootstrap admin created", "email", req.Email)
	return s.GetUserByID(user.ID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}
