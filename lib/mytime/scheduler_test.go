package mytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeScheduler(t *testing.T) {
	t.Run("Fires when due", func(t *testing.T) {
		s := NewFakeScheduler()
		fired := []string{}
		s.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "b") })
		s.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })

		s.Advance(99 * time.Millisecond)
		assert.Empty(t, fired)
		assert.Equal(t, 2, s.Pending())

		s.Advance(time.Second)
		assert.Equal(t, []string{"a", "b"}, fired)
		assert.Equal(t, 0, s.Pending())
	})

	t.Run("Stopped never fires", func(t *testing.T) {
		s := NewFakeScheduler()
		fired := false
		timer := s.AfterFunc(100*time.Millisecond, func() { fired = true })

		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())

		s.Advance(time.Second)
		assert.False(t, fired)
	})

	t.Run("Stop after fire", func(t *testing.T) {
		s := NewFakeScheduler()
		timer := s.AfterFunc(100*time.Millisecond, func() {})

		s.Advance(100 * time.Millisecond)
		assert.False(t, timer.Stop())
	})
}
