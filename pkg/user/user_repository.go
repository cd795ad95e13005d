package user

import (
	"context"
	"strings"

	"plate2share/domain"
	"plate2share/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error)
		SaveUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) (bool, error)
		CountUsers(ctx context.Context, status string) (int64, error)
		GetRoleStats(ctx context.Context) ([]*domain.RoleStat, error)
		GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

var sortableColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	tx := r.db.WithContext(ctx).Model(&entities.User{})

	if query.Role != "" {
		tx = tx.Where("role = ?", query.Role)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if order := buildOrderClause(query.SortBy); order != "" {
		tx = tx.Order(order)
	}

	if err := tx.
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func buildOrderClause(sortBy string) string {
	if sortBy == "" {
		return ""
	}

	parts := strings.SplitN(sortBy, ":", 2)
	column, ok := sortableColumns[parts[0]]
	if !ok {
		return ""
	}

	direction := "ASC"
	if len(parts) == 2 && parts[1] == "desc" {
		direction = "DESC"
	}
	return column + " " + direction
}

func (r *userRepository) SaveUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CountUsers counts all users when status is empty.
func (r *userRepository) CountUsers(ctx context.Context, status string) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&entities.User{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) GetRoleStats(ctx context.Context) ([]*domain.RoleStat, error) {
	var stats []*domain.RoleStat
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *userRepository) GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
