package memory

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

type userRepository struct {
	table  *table[domain.User]
	nextID atomic.Int64
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{table: newTable[domain.User]()}
}

func (r *userRepository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	user.ID = int(r.nextID.Add(1))
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.table.put(strconv.Itoa(user.ID), *user)
	return user, nil
}

func (r *userRepository) UpdateUser(_ context.Context, user *domain.User) error {
	key := strconv.Itoa(user.ID)
	existing, ok := r.table.get(key)
	if !ok {
		return nil
	}

	existing.Active = user.Active
	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Email != "" {
		existing.Email = user.Email
	}
	if user.PasswordHash != "" {
		existing.PasswordHash = user.PasswordHash
	}
	if user.RoleID != 0 {
		existing.RoleID = user.RoleID
	}
	existing.UpdatedAt = time.Now()

	r.table.put(key, existing)
	return nil
}

func (r *userRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	users := r.table.filter(func(u domain.User) bool { return u.Email == email })
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) GetUserByID(_ context.Context, userID int) (*domain.User, error) {
	user, ok := r.table.get(strconv.Itoa(userID))
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) ListUser(_ context.Context) ([]*domain.User, error) {
	users := r.table.filter(all[domain.User])
	sortBy(users, func(a, b domain.User) bool { return a.Name < b.Name })
	for i := range users {
		users[i].PasswordHash = ""
	}
	return pointers(users), nil
}
