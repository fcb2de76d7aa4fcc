// Package notify 提示消息通道，发出后不关心结果。
package notify

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notifier interface {
	Success(message string)
	Error(message string)
}

type Notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// LogNotifier 写入结构化日志
type LogNotifier struct {
	Log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) Success(message string) {
	n.Log.Info("notification", zap.String("kind", string(KindSuccess)), zap.String("message", message))
}

func (n *LogNotifier) Error(message string) {
	n.Log.Info("notification", zap.String("kind", string(KindError)), zap.String("message", message))
}

const DefaultFeedCapacity = 50

// Feed 内存中的待展示消息队列，超出容量时丢弃最旧的消息
type Feed struct {
	mu       sync.Mutex
	capacity int
	items    []Notification
	now      func() time.Time
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &Feed{capacity: capacity, now: time.Now}
}

func (f *Feed) Success(message string) { f.push(KindSuccess, message) }

func (f *Feed) Error(message string) { f.push(KindError, message) }

func (f *Feed) push(kind Kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) >= f.capacity {
		f.items = f.items[1:]
	}
	f.items = append(f.items, Notification{Kind: kind, Message: message, At: f.now()})
}

// Drain 取出并清空全部待展示消息
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	return out
}

// Pending 查看但不清空
func (f *Feed) Pending() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

type fanout []Notifier

// Fanout 依次转发给多个通道
func Fanout(notifiers ...Notifier) Notifier {
	return fanout(notifiers)
}

func (f fanout) Success(message string) {
	for _, n := range f {
		n.Success(message)
	}
}

func (f fanout) Error(message string) {
	for _, n := range f {
		n.Error(message)
	}
}

type counted struct {
	next    Notifier
	counter *prometheus.CounterVec
}

// Counted 按类型计数后转发，counter 需要一个 kind 标签
func Counted(next Notifier, counter *prometheus.CounterVec) Notifier {
	return &counted{next: next, counter: counter}
}

func (c *counted) Success(message string) {
	c.counter.WithLabelValues(string(KindSuccess)).Inc()
	c.next.Success(message)
}

func (c *counted) Error(message string) {
	c.counter.WithLabelValues(string(KindError)).Inc()
	c.next.Error(message)
}
