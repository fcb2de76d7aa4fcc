package util

// 持久化键
const (
	UserStorageKey     = "luminax_user"
	DarkModeStorageKey = "luminax_dark_mode"
)

const DefaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150"

const MinPasswordLength = 6
