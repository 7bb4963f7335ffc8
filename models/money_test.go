package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.00, Round2(2.999))
	assert.Equal(t, 2.99, Round2(2.994))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.5, Round2(-1.499))
	assert.Equal(t, 100.1, Round2(100.10))
}

func TestRound2_Idempotent(t *testing.T) {
	// 重复取整结果不变
	values := []float64{2.999, 0.005, 123.456, 0, 99.99}
	for _, v := range values {
		once := Round2(v)
		assert.Equal(t, once, Round2(once))
	}
}
