package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{
		"10 hours":   10,
		"5":          5,
		" 42h 30m":   42,
		"1.5 hours":  1,
		"hours":      0,
		"":           0,
		"-3 days":    -3,
		"+7 lessons": 7,
	}
	for in, want := range cases {
		assert.Equal(t, want, LeadingInt(in), "input %q", in)
	}
}

func TestRound2AndFormatMoney(t *testing.T) {
	assert.Equal(t, "$69.98", FormatMoney(69.98))
	assert.Equal(t, "$7.00", FormatMoney(6.998))
	assert.Equal(t, "$76.98", FormatMoney(76.978))
	assert.Equal(t, "7.00", fmt.Sprintf("%.2f", Round2(6.998)))
}

func TestErrorClassification(t *testing.T) {
	wrapped := fmt.Errorf("add to cart: %w", ErrAlreadyInCart)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrCourseNotFound)))
	assert.False(t, IsValidation(ErrLoginFailed))
}
