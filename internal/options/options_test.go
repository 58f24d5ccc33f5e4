package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type parserConfig struct {
	MaxDepth int
	Strict   bool
}

func (c *parserConfig) SetMaxDepth(n int) error {
	if n <= 0 {
		return errors.New("max depth must be positive")
	}
	c.MaxDepth = n

	return nil
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &parserConfig{}
		err := Apply(cfg,
			New(func(c *parserConfig) error { return c.SetMaxDepth(8) }),
			NoError(func(c *parserConfig) { c.Strict = true }),
			New(func(c *parserConfig) error { return c.SetMaxDepth(16) }),
		)
		require.NoError(t, err)
		require.Equal(t, 16, cfg.MaxDepth)
		require.True(t, cfg.Strict)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &parserConfig{}
		err := Apply(cfg,
			New(func(c *parserConfig) error { return c.SetMaxDepth(4) }),
			New(func(c *parserConfig) error { return c.SetMaxDepth(0) }),
			NoError(func(c *parserConfig) { c.Strict = true }),
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
		require.Equal(t, 4, cfg.MaxDepth)
		require.False(t, cfg.Strict, "options after the failing one must not run")
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &parserConfig{MaxDepth: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.MaxDepth)
	})
}

func TestNoError(t *testing.T) {
	cfg := &parserConfig{}
	opt := NoError(func(c *parserConfig) { c.Strict = true })
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.Strict)
}

func TestGenericTargets(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
