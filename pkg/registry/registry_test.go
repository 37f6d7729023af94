package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()

	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "one"}))
		assert.Equal(t, 1, reg.Count())
		assert.True(t, reg.Has("item1"))
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, err := reg.Get("item1")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID, "duplicate must not replace the original")
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	item := testItem{ID: 1, Name: "one"}
	require.NoError(t, reg.Register("item1", item))

	t.Run("existing item", func(t *testing.T) {
		got, err := reg.Get("item1")
		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("missing item", func(t *testing.T) {
		got, err := reg.Get("nope")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, testItem{}, got)
	})
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.List())

	names := reg.List()
	names[0] = "changed"
	assert.Equal(t, "zeta", reg.List()[0], "List must return a copy")
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", i), i)
			_ = reg.Has("item0")
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}
