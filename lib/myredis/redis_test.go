package myredis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := NewConfig("redis://localhost:6379/0")
		assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	})

	t.Run("Invalid url", func(t *testing.T) {
		_, err := NewConfig("http://not-redis").New(context.TODO())
		assert.Error(t, err)
	})
}
