package helper

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Annual Tech Symposium 2026", "annual-tech-symposium-2026"},
		{"  Hello,   World!  ", "hello-world"},
		{"Résumé Café", "resume-cafe"},
		{"C++ & Go --- workshop", "c-go-workshop"},
		{"UPPER lower MiXeD", "upper-lower-mixed"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 220), tc.in)
	}
}

func TestSlugifyEmptyGetsRandomToken(t *testing.T) {
	got := Slugify("!!!", 220)
	assert.Len(t, got, 8)
	assert.Regexp(t, "^[a-z0-9]+$", got)

	other := Slugify("", 220)
	assert.Len(t, other, 8)
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 60)
	got := Slugify(long, 40)
	assert.LessOrEqual(t, len(got), 40)
	assert.False(t, strings.HasSuffix(got, "-"))
}

// takenSet adapts a set of existing slugs to a SlugTakenFn.
func takenSet(existing ...string) SlugTakenFn {
	set := map[string]bool{}
	for _, s := range existing {
		set[s] = true
	}
	return func(_ context.Context, slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("free slug passes through", func(t *testing.T) {
		got, err := EnsureUniqueSlug(ctx, "tech-fest", 220, takenSet())
		require.NoError(t, err)
		assert.Equal(t, "tech-fest", got)
	})

	t.Run("first collision gets -2", func(t *testing.T) {
		got, err := EnsureUniqueSlug(ctx, "tech-fest", 220, takenSet("tech-fest"))
		require.NoError(t, err)
		assert.Equal(t, "tech-fest-2", got)
	})

	t.Run("suffix counts up past further collisions", func(t *testing.T) {
		got, err := EnsureUniqueSlug(ctx, "tech-fest", 220,
			takenSet("tech-fest", "tech-fest-2", "tech-fest-3"))
		require.NoError(t, err)
		assert.Equal(t, "tech-fest-4", got)
	})

	t.Run("suffixed slug stays within the limit", func(t *testing.T) {
		base := strings.Repeat("a", 20)
		got, err := EnsureUniqueSlug(ctx, base, 20, takenSet(base))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), 20)
		assert.True(t, strings.HasSuffix(got, "-2"))
	})

	t.Run("overlong base is trimmed up front", func(t *testing.T) {
		got, err := EnsureUniqueSlug(ctx, strings.Repeat("b", 50), 30, takenSet())
		require.NoError(t, err)
		assert.Len(t, got, 30)
	})
}
