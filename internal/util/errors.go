package util

import "errors"

// 业务规则校验失败，返回给调用方的同时推送通知，状态保持不变
var (
	ErrAuthRequired       = errors.New("please login to continue")
	ErrAlreadyEnrolled    = errors.New("you are already enrolled in this course")
	ErrAlreadyInCart      = errors.New("course is already in your cart")
	ErrEmptyCart          = errors.New("your cart is empty")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAccepted   = errors.New("please agree to the terms and conditions")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidRole        = errors.New("invalid role")
)

// 资源不存在
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrLessonNotFound     = errors.New("lesson not found")
)

// 登录或注册仍在进行
var ErrRequestInProgress = errors.New("another request is in progress")

// 模拟网络调用失败
var (
	ErrLoginFailed  = errors.New("login failed, please try again")
	ErrSignupFailed = errors.New("signup failed, please try again")
)

// IsValidation 是否为业务规则校验错误
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrAuthRequired, ErrAlreadyEnrolled, ErrAlreadyInCart, ErrEmptyCart,
		ErrInvalidCredentials, ErrPasswordMismatch, ErrTermsNotAccepted,
		ErrPasswordTooShort, ErrInvalidRole,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound 是否为资源不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound) ||
		errors.Is(err, ErrLessonNotFound)
}
