package user

import (
	"context"
	"sort"
	"testing"
	"time"

	"plate2share/domain"
	"plate2share/entities"
	"plate2share/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users []*entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, query domain.UserQuery) ([]*entities.User, int64, error) {
	var matched []*entities.User
	for _, u := range f.users {
		if query.Role != "" && u.Role != query.Role {
			continue
		}
		if query.Status != "" && u.Status != query.Status {
			continue
		}
		matched = append(matched, u)
	}

	total := int64(len(matched))

	if query.Skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[query.Skip:]
	if query.Limit < len(matched) {
		matched = matched[:query.Limit]
	}

	result := make([]*entities.User, 0, len(matched))
	for _, u := range matched {
		copied := *u
		result = append(result, &copied)
	}
	return result, total, nil
}

func (f *fakeUserRepository) SaveUser(_ context.Context, user *entities.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			stored := *user
			f.users[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) (bool, error) {
	for i, u := range f.users {
		if u.ID.String() == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) CountUsers(_ context.Context, status string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if status == "" || u.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepository) GetRoleStats(_ context.Context) ([]*domain.RoleStat, error) {
	counts := map[string]int64{}
	for _, u := range f.users {
		counts[u.Role]++
	}

	stats := make([]*domain.RoleStat, 0, len(counts))
	for role, count := range counts {
		stats = append(stats, &domain.RoleStat{Role: role, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Role < stats[j].Role })
	return stats, nil
}

func (f *fakeUserRepository) GetRecentUsers(_ context.Context, limit int) ([]*entities.User, error) {
	sorted := make([]*entities.User, len(f.users))
	copy(sorted, f.users)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func newTestUserService() (UserService, *fakeUserRepository) {
	repo := &fakeUserRepository{}
	service := NewUserService(repo, jwt.NewJWTService())
	return service, repo
}

func seedUser(repo *fakeUserRepository, role, status string, createdAt time.Time) *entities.User {
	user := &entities.User{
		ID:     uuid.New(),
		Name:   "Seed User",
		Email:  uuid.NewString() + "@example.com",
		Role:   role,
		Status: status,
		Timestamp: entities.Timestamp{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	_ = repo.CreateUser(context.Background(), user)
	return user
}

func TestRegisterDefaultsAndHashing(t *testing.T) {
	service, repo := newTestUserService()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, registered.Role)
	assert.Equal(t, domain.UserStatusActive, registered.Status)

	stored := repo.users[0]
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()

	req := domain.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, repo := newTestUserService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "alice@example.com", login.User.Email)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsNotMatched)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsNotMatched)

	repo.users[0].Status = domain.UserStatusInactive
	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	service, _ := newTestUserService()

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDirectoryOpsRequireAdmin(t *testing.T) {
	service, repo := newTestUserService()
	seeded := seedUser(repo, domain.RoleUser, domain.UserStatusActive, time.Now())

	_, err := service.GetUsers(context.Background(), domain.UserQuery{}, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = service.GetUserByID(context.Background(), seeded.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	name := "Changed"
	_, err = service.UpdateUser(context.Background(), seeded.ID.String(), domain.UpdateUserRequest{Name: &name}, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Equal(t, "Seed User", repo.users[0].Name)

	err = service.DeleteUser(context.Background(), seeded.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Len(t, repo.users, 1)

	_, err = service.GetUserStats(context.Background(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetUsersFiltersAndPagination(t *testing.T) {
	service, repo := newTestUserService()
	for i := 0; i < 3; i++ {
		seedUser(repo, domain.RoleUser, domain.UserStatusActive, time.Now())
	}
	seedUser(repo, domain.RoleAdmin, domain.UserStatusInactive, time.Now())

	list, err := service.GetUsers(context.Background(), domain.UserQuery{Role: domain.RoleUser}, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list.Users, 3)
	assert.EqualValues(t, 3, list.Total)

	list, err = service.GetUsers(context.Background(), domain.UserQuery{Limit: 2, Skip: 3}, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list.Users, 1)
	assert.EqualValues(t, 4, list.Total)
}

func TestUpdateUserAppliesPatch(t *testing.T) {
	service, repo := newTestUserService()
	seeded := seedUser(repo, domain.RoleUser, domain.UserStatusActive, time.Now())

	role := domain.RoleAdmin
	status := domain.UserStatusInactive
	updated, err := service.UpdateUser(context.Background(), seeded.ID.String(), domain.UpdateUserRequest{
		Role:   &role,
		Status: &status,
	}, domain.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, domain.UserStatusInactive, updated.Status)
	assert.Equal(t, "Seed User", updated.Name)
}

func TestUpdateUserNotFound(t *testing.T) {
	service, _ := newTestUserService()

	name := "Ghost"
	_, err := service.UpdateUser(context.Background(), uuid.NewString(), domain.UpdateUserRequest{Name: &name}, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	service, repo := newTestUserService()
	seeded := seedUser(repo, domain.RoleUser, domain.UserStatusActive, time.Now())

	require.NoError(t, service.DeleteUser(context.Background(), seeded.ID.String(), domain.RoleAdmin))
	assert.Empty(t, repo.users)

	err := service.DeleteUser(context.Background(), seeded.ID.String(), domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserStats(t *testing.T) {
	service, repo := newTestUserService()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		seedUser(repo, domain.RoleUser, domain.UserStatusActive, base.Add(time.Duration(i)*time.Minute))
	}
	seedUser(repo, domain.RoleAdmin, domain.UserStatusInactive, base.Add(time.Hour))
	newest := seedUser(repo, domain.RoleAdmin, domain.UserStatusActive, base.Add(2*time.Hour))

	stats, err := service.GetUserStats(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)

	assert.EqualValues(t, 6, stats.TotalUsers)
	assert.EqualValues(t, 5, stats.ActiveUsers)
	assert.EqualValues(t, 1, stats.InactiveUsers)

	require.Len(t, stats.RoleStats, 2)
	assert.Equal(t, domain.RoleAdmin, stats.RoleStats[0].Role)
	assert.EqualValues(t, 2, stats.RoleStats[0].Count)
	assert.Equal(t, domain.RoleUser, stats.RoleStats[1].Role)
	assert.EqualValues(t, 4, stats.RoleStats[1].Count)

	require.Len(t, stats.RecentUsers, 5)
	assert.Equal(t, newest.Email, stats.RecentUsers[0].Email)
}

func TestUserBuildOrderClause(t *testing.T) {
	assert.Equal(t, "name ASC", buildOrderClause("name"))
	assert.Equal(t, "created_at DESC", buildOrderClause("created_at:desc"))
	assert.Equal(t, "", buildOrderClause("password:desc"))
}
