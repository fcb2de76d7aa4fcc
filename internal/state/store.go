package state

import (
	"sync"

	"luminax_client/pkg/logger"

	"go.uber.org/zap"
)

// Observer 每次归约之后同步调用，prev 与 next 可能相同（无效动作）
type Observer func(prev, next State, a Action)

// Store 持有最新快照，是唯一的修改入口。
// Dispatch 串行执行，观察者在下一次 Dispatch 之前全部返回；观察者内不能再调用 Dispatch。
type Store struct {
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	version   uint64
	observers map[uint64]Observer
	order     []uint64
	nextID    uint64
}

func NewStore(initial State) *Store {
	return &Store{
		state:     initial,
		observers: make(map[uint64]Observer),
	}
}

// State 返回最新快照
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Version 每次 Dispatch 加一，用于判断快照是否过期
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Dispatch 按调用顺序归约动作并通知观察者，返回新快照
func (s *Store) Dispatch(a Action) State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Apply(prev, a)
	s.state = next
	s.version++
	observers := make([]Observer, 0, len(s.order))
	for _, id := range s.order {
		observers = append(observers, s.observers[id])
	}
	s.mu.Unlock()

	logger.Log.Debug("action dispatched", zap.String("action", actionName(a)))

	for _, o := range observers {
		o(prev, next, a)
	}
	return next
}

// Subscribe 注册观察者，返回取消函数
func (s *Store) Subscribe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers[id] = o
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.observers[id]; !ok {
			return
		}
		delete(s.observers, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Watch 只在 selector 选出的切片发生变化时回调，每次变化恰好一次
func Watch[T any](s *Store, selector func(State) T, equal func(a, b T) bool, fn func(T)) func() {
	return s.Subscribe(func(prev, next State, _ Action) {
		before, after := selector(prev), selector(next)
		if !equal(before, after) {
			fn(after)
		}
	})
}

func actionName(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Name()
}
