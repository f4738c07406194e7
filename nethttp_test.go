package splitcookies

import (
	"net/http/cookiejar"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStd(t *testing.T) {
	std := New("session", "abc").Std()
	require.Equal(t, "session", std.Name)
	require.Equal(t, "abc", std.Value)
}

func TestFillJar(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	u, err := url.Parse("https://example.com")
	require.NoError(t, err)

	FillJar(jar, u, "session=abc123; user=john; garbage")

	stored := jar.Cookies(u)
	require.Len(t, stored, 2)

	values := map[string]string{}
	for _, c := range stored {
		values[c.Name] = c.Value
	}

	require.Equal(t, "abc123", values["session"])
	require.Equal(t, "john", values["user"])
}
