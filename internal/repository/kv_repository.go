package repository

import (
	"context"
	"errors"
	"sync"

	"luminax_client/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository 字符串键值持久化服务
type KVRepository interface {
	// Get 键不存在时 ok 为 false
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryKVRepository 进程内实现
type MemoryKVRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{data: make(map[string]string)}
}

func (r *MemoryKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *MemoryKVRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *MemoryKVRepository) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// RedisKVRepository 键名加命名空间前缀
type RedisKVRepository struct {
	Client    *redis.Client
	Namespace string
}

func NewRedisKVRepository(rdb *redis.Client, namespace string) *RedisKVRepository {
	return &RedisKVRepository{Client: rdb, Namespace: namespace}
}

func (r *RedisKVRepository) key(k string) string {
	if r.Namespace == "" {
		return k
	}
	return r.Namespace + ":" + k
}

func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.Client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisKVRepository) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisKVRepository) Remove(ctx context.Context, key string) error {
	return r.Client.Del(ctx, r.key(key)).Err()
}

// SQLKVRepository kv_entries 表
type SQLKVRepository struct {
	DB        *gorm.DB
	Namespace string
}

func NewSQLKVRepository(db *gorm.DB, namespace string) *SQLKVRepository {
	return &SQLKVRepository{DB: db, Namespace: namespace}
}

func (r *SQLKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	err := r.DB.WithContext(ctx).
		Where("namespace = ? AND kv_key = ?", r.Namespace, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *SQLKVRepository) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntry{Namespace: r.Namespace, Key: key, Value: value}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *SQLKVRepository) Remove(ctx context.Context, key string) error {
	return r.DB.WithContext(ctx).
		Where("namespace = ? AND kv_key = ?", r.Namespace, key).
		Delete(&model.KVEntry{}).Error
}
