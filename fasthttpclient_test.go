package splitcookies

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestApplyRequest(t *testing.T) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	ApplyRequest(req, "session=abc;123; user=john; garbage")

	require.Equal(t, "abc;123", string(req.Header.Cookie("session")))
	require.Equal(t, "john", string(req.Header.Cookie("user")))
	require.Empty(t, req.Header.Cookie("garbage"))
}
