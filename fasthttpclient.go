package splitcookies

import (
	"github.com/flrdv/uf"
	"github.com/valyala/fasthttp"
)

// ApplyRequest copies every well-formed cookie of the header onto a fasthttp
// client request, skipping malformed entries.
func ApplyRequest(req *fasthttp.Request, header string) {
	for c, err := range Walk(header) {
		if err == nil {
			req.Header.SetCookieBytesKV(uf.S2B(c.Name), uf.S2B(c.Value))
		}
	}
}
