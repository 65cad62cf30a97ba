package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRunIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedRunIDGenerator("run-123")

	assert.Equal(t, "run-123", gen.Generate())
	assert.Equal(t, "run-123", gen.Generate())
}

func TestFixedRunIDGenerator_EmptyIDDefault(t *testing.T) {
	assert.Equal(t, "test-run-default", NewFixedRunIDGenerator("").Generate())
}

func TestFixedRunIDGenerator_ThreadSafe(t *testing.T) {
	gen := NewFixedRunIDGenerator("shared")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "shared", gen.Generate())
			}
		}()
	}
	wg.Wait()
}

func TestBind(t *testing.T) {
	c := Bind(t, "func twice(n int) int { return 2 * n }", "twice")

	got, err := c.Invoke([]any{4})
	assert.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestNewRuntime(t *testing.T) {
	v, err := NewRuntime(t, 1).Evaluate("randint(4, 4)")
	assert.NoError(t, err)
	assert.Equal(t, 4, v)
}
