package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"luminax_client/internal/model"
	"luminax_client/internal/notify"
	"luminax_client/internal/repository"
	"luminax_client/internal/state"
	"luminax_client/internal/util"
	"luminax_client/pkg/logger"
	"luminax_client/pkg/monitoring"
	"luminax_client/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Transport 模拟一次网络往返，返回错误表示请求失败
type Transport func(ctx context.Context) error

// SessionService 登录、注册与登出。登录校验只是与演示密码比较。
type SessionService struct {
	Store        *state.Store
	Users        *repository.UserRepository
	Notifier     notify.Notifier
	Delay        time.Duration
	DemoPassword string
	Transport    Transport
	Clock        func() time.Time
	NewID        func() string

	// busy 整个登录或注册期间持有，同一时刻只允许一个请求
	busy sync.Mutex
}

func NewSessionService(store *state.Store, users *repository.UserRepository, notifier notify.Notifier, delay time.Duration, demoPassword string) *SessionService {
	return &SessionService{
		Store:        store,
		Users:        users,
		Notifier:     notifier,
		Delay:        delay,
		DemoPassword: demoPassword,
		Transport:    func(context.Context) error { return nil },
		Clock:        time.Now,
		NewID:        model.GenerateUUID,
	}
}

type RegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

func (s *SessionService) Current() *model.User {
	return s.Store.State().User
}

// roundTrip 等待模拟延迟，ctx 取消时立即返回且不写入任何状态
func (s *SessionService) roundTrip(ctx context.Context) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	return s.Transport(ctx)
}

func (s *SessionService) Login(ctx context.Context, email, password string) (user *model.User, err error) {
	if !s.busy.TryLock() {
		return nil, util.ErrRequestInProgress
	}
	defer s.busy.Unlock()

	ctx, span := tracing.Start(ctx, "session.login")
	defer span.End()
	start := time.Now()
	defer func() {
		monitoring.ObserveSession("login", outcome(err), start)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	s.Store.Dispatch(state.SetLoading{Loading: true})
	defer s.Store.Dispatch(state.SetLoading{Loading: false})

	if err := s.roundTrip(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		logger.Log.Warn("simulated login request failed", zap.Error(err))
		s.Notifier.Error("Login failed. Please try again.")
		return nil, fmt.Errorf("%w: %v", util.ErrLoginFailed, err)
	}

	found, lookupErr := s.Users.FindByEmail(email)
	if lookupErr != nil || password != s.DemoPassword {
		s.Notifier.Error("Invalid email or password")
		return nil, util.ErrInvalidCredentials
	}

	span.SetAttributes(attribute.String("user.id", found.ID))
	s.Store.Dispatch(state.SetUser{User: found})
	s.Notifier.Success("Welcome back!")
	return found, nil
}

// DemoLogin 以该角色的第一个种子用户登录，没有模拟延迟
func (s *SessionService) DemoLogin(role model.UserRole) (*model.User, error) {
	if !role.Valid() || role == model.Admin {
		return nil, util.ErrInvalidRole
	}
	found, err := s.Users.FindFirstByRole(role)
	if err != nil {
		return nil, err
	}
	s.Store.Dispatch(state.SetUser{User: found})
	s.Notifier.Success(fmt.Sprintf("Logged in as demo %s!", role))
	return found, nil
}

func (s *SessionService) validate(in RegisterInput) (model.UserRole, error) {
	if in.Password != in.ConfirmPassword {
		s.Notifier.Error("Passwords do not match")
		return "", util.ErrPasswordMismatch
	}
	if !in.AgreeToTerms {
		s.Notifier.Error("Please agree to the terms and conditions")
		return "", util.ErrTermsNotAccepted
	}
	if len(in.Password) < util.MinPasswordLength {
		s.Notifier.Error("Password must be at least 6 characters")
		return "", util.ErrPasswordTooShort
	}

	role := model.UserRole(strings.ToLower(in.Role))
	if role == "" {
		role = model.Student
	}
	if !role.Valid() || role == model.Admin {
		s.Notifier.Error("Please choose a valid role")
		return "", util.ErrInvalidRole
	}
	return role, nil
}

func (s *SessionService) Register(ctx context.Context, in RegisterInput) (user *model.User, err error) {
	if !s.busy.TryLock() {
		return nil, util.ErrRequestInProgress
	}
	defer s.busy.Unlock()

	ctx, span := tracing.Start(ctx, "session.register")
	defer span.End()
	start := time.Now()
	defer func() {
		monitoring.ObserveSession("register", outcome(err), start)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	role, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	s.Store.Dispatch(state.SetLoading{Loading: true})
	defer s.Store.Dispatch(state.SetLoading{Loading: false})

	if err := s.roundTrip(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		logger.Log.Warn("simulated signup request failed", zap.Error(err))
		s.Notifier.Error("Signup failed. Please try again.")
		return nil, fmt.Errorf("%w: %v", util.ErrSignupFailed, err)
	}

	created := model.User{
		ID:        s.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		Avatar:    util.DefaultAvatar,
		CreatedAt: s.Clock().UTC(),
	}
	s.Users.Create(created)
	s.Store.Dispatch(state.SetUser{User: &created})
	s.Notifier.Success("Account created successfully!")
	return &created, nil
}

func (s *SessionService) Logout() {
	s.Store.Dispatch(state.SetUser{User: nil})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case util.IsValidation(err), errors.Is(err, util.ErrRequestInProgress):
		return "rejected"
	default:
		return "failed"
	}
}
