package service

import (
	"context"
	"encoding/json"
	"time"

	"luminax_client/internal/model"
	"luminax_client/internal/repository"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
	"luminax_client/pkg/logger"

	"go.uber.org/zap"
)

const persistTimeout = 3 * time.Second

// PreferenceService 持久化当前用户和深色模式，启动时恢复
type PreferenceService struct {
	Store *state.Store
	KV    repository.KVRepository
	// Theme 深色模式变化时调用，可为空
	Theme func(dark bool)

	stops []func()
}

func NewPreferenceService(store *state.Store, kv repository.KVRepository, theme func(bool)) *PreferenceService {
	return &PreferenceService{Store: store, KV: kv, Theme: theme}
}

func sameUser(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameBool(a, b bool) bool { return a == b }

// Start 注册观察者。观察者内只做存储写入，不派发动作。
func (s *PreferenceService) Start() {
	s.stops = append(s.stops,
		state.Watch(s.Store, func(st state.State) *model.User { return st.User }, sameUser, s.persistUser),
		state.Watch(s.Store, func(st state.State) bool { return st.DarkMode }, sameBool, s.persistDarkMode),
	)
}

func (s *PreferenceService) Stop() {
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}

func (s *PreferenceService) persistUser(u *model.User) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if u == nil {
		if err := s.KV.Remove(ctx, util.UserStorageKey); err != nil {
			logger.Log.Error("Failed to remove persisted user", zap.Error(err))
		}
		return
	}

	data, err := json.Marshal(u)
	if err != nil {
		logger.Log.Error("Failed to encode user", zap.Error(err))
		return
	}
	if err := s.KV.Set(ctx, util.UserStorageKey, string(data)); err != nil {
		logger.Log.Error("Failed to persist user", zap.String("user", u.ID), zap.Error(err))
	}
}

func (s *PreferenceService) persistDarkMode(dark bool) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	value := "false"
	if dark {
		value = "true"
	}
	if err := s.KV.Set(ctx, util.DarkModeStorageKey, value); err != nil {
		logger.Log.Error("Failed to persist dark mode", zap.Error(err))
	}
	if s.Theme != nil {
		s.Theme(dark)
	}
}

// Restore 读取已持久化的用户与主题。读取失败或内容损坏按不存在处理。
func (s *PreferenceService) Restore(ctx context.Context) {
	if raw, ok, err := s.KV.Get(ctx, util.UserStorageKey); err != nil {
		logger.Log.Warn("Failed to read persisted user", zap.Error(err))
	} else if ok {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
			logger.Log.Warn("Ignoring malformed persisted user", zap.Error(err))
		} else {
			s.Store.Dispatch(state.SetUser{User: &u})
		}
	}

	raw, ok, err := s.KV.Get(ctx, util.DarkModeStorageKey)
	if err != nil {
		logger.Log.Warn("Failed to read persisted theme", zap.Error(err))
		return
	}
	if ok && raw == "true" && !s.Store.State().DarkMode {
		s.Store.Dispatch(state.ToggleDarkMode{})
	}
}

func (s *PreferenceService) ToggleDarkMode() bool {
	return s.Store.Dispatch(state.ToggleDarkMode{}).DarkMode
}

func (s *PreferenceService) DarkMode() bool {
	return s.Store.State().DarkMode
}
