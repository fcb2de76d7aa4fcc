package repository

import (
	"sync"

	"luminax_client/internal/model"
	"luminax_client/internal/util"
)

// UserRepository 种子用户与本进程内注册用户的内存目录
type UserRepository struct {
	mu         sync.RWMutex
	seeded     []model.User
	registered []model.User
}

func NewUserRepository(seed []model.User) *UserRepository {
	r := &UserRepository{}
	r.Replace(seed)
	return r
}

func (r *UserRepository) find(match func(*model.User) bool) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, list := range [][]model.User{r.seeded, r.registered} {
		for i := range list {
			if match(&list[i]) {
				u := list[i]
				return &u, nil
			}
		}
	}
	return nil, util.ErrUserNotFound
}

// FindByEmail 邮箱精确匹配
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email })
}

// FindFirstByRole 演示登录使用该角色的第一个用户
func (r *UserRepository) FindFirstByRole(role model.UserRole) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Role == role })
}

func (r *UserRepository) Create(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered = append(r.registered, user)
}

// Replace 种子重新加载时只替换种子用户
func (r *UserRepository) Replace(seed []model.User) {
	users := make([]model.User, len(seed))
	copy(users, seed)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeded = users
}
