package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	t.Run("unqualified", func(t *testing.T) {
		ref, err := ParseRef("sky")
		assert.NoError(t, err)
		assert.False(t, ref.Qualified)
		assert.Equal(t, "sky", ref.Name)
		assert.Equal(t, "", ref.Qualifier)
	})

	t.Run("qualified", func(t *testing.T) {
		ref, err := ParseRef("blues.sky")
		assert.NoError(t, err)
		assert.True(t, ref.Qualified)
		assert.Equal(t, "blues", ref.Qualifier)
		assert.Equal(t, "sky", ref.Name)
	})

	t.Run("two dots is malformed", func(t *testing.T) {
		_, err := ParseRef("a.b.c")
		assert.ErrorIs(t, err, ErrMalformedName)
	})

	t.Run("many dots is malformed", func(t *testing.T) {
		_, err := ParseRef("a.b.c.d.e")
		assert.ErrorIs(t, err, ErrMalformedName)
	})

	t.Run("empty string is unqualified", func(t *testing.T) {
		ref, err := ParseRef("")
		assert.NoError(t, err)
		assert.False(t, ref.Qualified)
		assert.Equal(t, "", ref.Name)
	})

	t.Run("leading dot keeps empty qualifier", func(t *testing.T) {
		ref, err := ParseRef(".sky")
		assert.NoError(t, err)
		assert.True(t, ref.Qualified)
		assert.Equal(t, "", ref.Qualifier)
		assert.Equal(t, "sky", ref.Name)
	})

	t.Run("trailing dot keeps empty name", func(t *testing.T) {
		ref, err := ParseRef("blues.")
		assert.NoError(t, err)
		assert.True(t, ref.Qualified)
		assert.Equal(t, "blues", ref.Qualifier)
		assert.Equal(t, "", ref.Name)
	})
}

func TestRefString(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		for _, s := range []string{"sky", "blues.sky", ".sky", "blues."} {
			ref, err := ParseRef(s)
			assert.NoError(t, err)
			assert.Equal(t, s, ref.String())
		}
	})
}
