package model

import (
	"time"

	"github.com/google/uuid"
)

// KVEntry 持久化键值表，按命名空间隔离不同客户端
type KVEntry struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"column:kv_key;primaryKey;size:191"`
	Value     string    `gorm:"column:kv_value;type:text;not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

func GenerateUUID() string {
	return uuid.New().String()
}
