package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "profile retrieved successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessGetUser        = "user retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessGetUserStats   = "user statistics retrieved successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve profile"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedGetUser        = "failed to retrieve user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedGetUserStats   = "failed to retrieve user statistics"

	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrCredentialsNotMatched = errors.New("email or password does not match")
	ErrAccountInactive       = errors.New("account is inactive")
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	// UpdateUserRequest is a closed patch. Handlers decode it with
	// DisallowUnknownFields so unknown keys reject the whole request.
	UpdateUserRequest struct {
		Name   *string `json:"name"`
		Email  *string `json:"email" validate:"omitempty,email"`
		Role   *string `json:"role" validate:"omitempty,oneof=user admin"`
		Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
	}

	UserQuery struct {
		Role   string
		Status string
		SortBy string
		Limit  int
		Skip   int
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	UserListResponse struct {
		Users []*UserResponse `json:"users"`
		Total int64           `json:"total"`
		Limit int             `json:"limit"`
		Skip  int             `json:"skip"`
	}

	RoleStat struct {
		Role  string `json:"role"`
		Count int64  `json:"count"`
	}

	RecentUser struct {
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	UserStatsResponse struct {
		TotalUsers    int64         `json:"total_users"`
		ActiveUsers   int64         `json:"active_users"`
		InactiveUsers int64         `json:"inactive_users"`
		RoleStats     []*RoleStat   `json:"role_stats"`
		RecentUsers   []*RecentUser `json:"recent_users"`
	}
)
