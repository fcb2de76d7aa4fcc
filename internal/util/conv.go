package util

import (
	"math"
	"strconv"
	"strings"
)

// LeadingInt 解析字符串开头的整数部分，"42 hours" -> 42，无数字时返回 0
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Round2 四舍五入到两位小数，仅用于展示
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney 金额展示格式，例如 $76.98
func FormatMoney(v float64) string {
	return "$" + strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
