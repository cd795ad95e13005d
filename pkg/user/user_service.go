package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plate2share/domain"
	"plate2share/entities"
	"plate2share/internal/utils"
	"plate2share/internal/utils/mailing"
	"plate2share/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultUserLimit = 10

	recentUserCount    = 5
	resetTokenLifetime = 15 * time.Minute
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		GetUsers(ctx context.Context, query domain.UserQuery, role string) (*domain.UserListResponse, error)
		GetUserByID(ctx context.Context, id string, role string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest, role string) (*domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string, role string) error
		GetUserStats(ctx context.Context, role string) (*domain.UserStatsResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
		Status:   domain.UserStatusActive,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsNotMatched
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsNotMatched
	}

	if user.Status != domain.UserStatusActive {
		return nil, domain.ErrAccountInactive
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"email": user.Email},
		resetTokenLifetime,
	)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 15 minutes.</p>",
		user.Name, resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your plate2share password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.UpdatedAt = time.Now()
	return s.userRepository.SaveUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context, query domain.UserQuery, role string) (*domain.UserListResponse, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	if query.Limit <= 0 {
		query.Limit = DefaultUserLimit
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	users, count, err := s.userRepository.GetUsers(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	return &domain.UserListResponse{
		Users: result,
		Total: count,
		Limit: query.Limit,
		Skip:  query.Skip,
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string, role string) (*domain.UserResponse, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest, role string) (*domain.UserResponse, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepository.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string, role string) error {
	if role != domain.RoleAdmin {
		return domain.ErrUserNotAllowed
	}

	deleted, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) GetUserStats(ctx context.Context, role string) (*domain.UserStatsResponse, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	totalUsers, err := s.userRepository.CountUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepository.CountUsers(ctx, domain.UserStatusActive)
	if err != nil {
		return nil, err
	}
	inactiveUsers, err := s.userRepository.CountUsers(ctx, domain.UserStatusInactive)
	if err != nil {
		return nil, err
	}

	roleStats, err := s.userRepository.GetRoleStats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.userRepository.GetRecentUsers(ctx, recentUserCount)
	if err != nil {
		return nil, err
	}

	recentUsers := make([]*domain.RecentUser, 0, len(recent))
	for _, u := range recent {
		recentUsers = append(recentUsers, &domain.RecentUser{
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	return &domain.UserStatsResponse{
		TotalUsers:    totalUsers,
		ActiveUsers:   activeUsers,
		InactiveUsers: inactiveUsers,
		RoleStats:     roleStats,
		RecentUsers:   recentUsers,
	}, nil
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
