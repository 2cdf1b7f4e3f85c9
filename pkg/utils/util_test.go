package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 4500.17, Round2(4500.16666))
	assert.Equal(t, 4500.16, Round2(4500.164))
	assert.Equal(t, 1000.0, Round2(1000))
	assert.Equal(t, -2.35, Round2(-2.345001))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 11, 4, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 20, DaysUntil(now, time.Date(2026, 11, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysUntil(now, time.Date(2026, 11, 4, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, -4, DaysUntil(now, time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)))
}
