package salessim

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Run("Handlers in registration order", func(t *testing.T) {
		sut := NewBus()
		calls := []string{}
		sut.OnAddProduct(func(msg AddProduct) error {
			calls = append(calls, "first:"+msg.ID)
			return nil
		})
		sut.OnAddProduct(func(msg AddProduct) error {
			calls = append(calls, "second:"+msg.ID)
			return nil
		})

		err := sut.PublishAddProduct(productA)

		assert.NoError(t, err)
		assert.Equal(t, []string{"first:A", "second:A"}, calls)
	})

	t.Run("Errors are joined", func(t *testing.T) {
		sut := NewBus()
		sut.OnAddProduct(func(msg AddProduct) error {
			return fmt.Errorf("cart locked")
		})

		err := sut.PublishAddProduct(productA)

		assert.EqualError(t, err, "cart locked")
	})

	t.Run("No handlers", func(t *testing.T) {
		assert.NoError(t, NewBus().PublishAddProduct(productA))
	})
}

func TestTermSubject(t *testing.T) {
	sut := NewTermSubject("")
	seen := []string{}
	sut.Subscribe(func(term string) {
		seen = append(seen, term)
	})

	assert.True(t, sut.Set("a"))
	assert.False(t, sut.Set("a"))
	assert.True(t, sut.Set(""))

	assert.Equal(t, []string{"a", ""}, seen)
	assert.Equal(t, "", sut.Get())
}

func TestNotificationLog(t *testing.T) {
	sut := NewNotificationLog(2)

	sut.Show(context.TODO(), Notification{Title: "1", Variant: VariantInfo})
	sut.Show(context.TODO(), Notification{Title: "2", Variant: VariantWarning})
	sut.Show(context.TODO(), Notification{Title: "3", Variant: VariantError})

	peeked := sut.Peek()
	assert.Len(t, peeked, 2)
	assert.Equal(t, "2", peeked[0].Title)

	drained := sut.Drain()
	assert.Equal(t, peeked, drained)
	assert.Empty(t, sut.Drain())
}
