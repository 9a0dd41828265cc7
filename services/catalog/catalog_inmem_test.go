package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCatalog(t *testing.T) {
	c := context.TODO()
	sut := NewInMemoryCatalog()

	t.Run("Empty term returns top products", func(t *testing.T) {
		got, err := sut.Search(c, "")
		require.NoError(t, err)
		assert.Len(t, got, topN)
		assert.Equal(t, "product_hockey_stick", got[0].ID)
	})

	t.Run("Case insensitive match", func(t *testing.T) {
		got, err := sut.Search(c, "SHOES")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Hockey shoes", got[0].Name)
		assert.Equal(t, "Tennis shoes", got[1].Name)
		assert.Equal(t, "Running shoes", got[2].Name)
	})

	t.Run("No match", func(t *testing.T) {
		got, err := sut.Search(c, "golf")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Result does not alias the assortment", func(t *testing.T) {
		got, err := sut.Search(c, "")
		require.NoError(t, err)
		got[0].Name = "changed"

		again, err := sut.Search(c, "")
		require.NoError(t, err)
		assert.Equal(t, "Hockey stick", again[0].Name)
	})
}
