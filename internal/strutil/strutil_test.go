package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripWS(t *testing.T) {
	require.Equal(t, "abc", LStripWS(" \tabc"))
	require.Equal(t, "abc ", LStripWS("abc "))
	require.Equal(t, "", LStripWS("  \t"))
	require.Equal(t, "abc", RStripWS("abc \t"))
	require.Equal(t, " abc", RStripWS(" abc"))
	require.Equal(t, "", RStripWS("\t  "))
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "abc", Unquote(`"abc"`))
	require.Equal(t, "", Unquote(`""`))
	require.Equal(t, `"abc`, Unquote(`"abc`))
	require.Equal(t, `abc"`, Unquote(`abc"`))
	require.Equal(t, `"`, Unquote(`"`))
	require.Equal(t, `"inner"`, Unquote(`""inner""`))
}

func TestDecode(t *testing.T) {
	t.Run("plain string untouched", func(t *testing.T) {
		decoded, ok := Decode("hello world")
		require.True(t, ok)
		require.Equal(t, "hello world", decoded)
	})

	t.Run("escapes", func(t *testing.T) {
		decoded, ok := Decode("a%20b%3Bc%2fd")
		require.True(t, ok)
		require.Equal(t, "a b;c/d", decoded)
	})

	t.Run("consecutive escapes", func(t *testing.T) {
		decoded, ok := Decode("%41%42%43")
		require.True(t, ok)
		require.Equal(t, "ABC", decoded)
	})

	t.Run("truncated escape", func(t *testing.T) {
		_, ok := Decode("100%")
		require.False(t, ok)
		_, ok = Decode("%a")
		require.False(t, ok)
	})

	t.Run("non-hex escape", func(t *testing.T) {
		_, ok := Decode("%zz")
		require.False(t, ok)
		_, ok = Decode("%4g")
		require.False(t, ok)
	})
}
