package splitcookies

import (
	"net/http"
	"net/url"
)

// Std converts the cookie for use with net/http APIs.
func (c Cookie) Std() *http.Cookie {
	return &http.Cookie{Name: c.Name, Value: c.Value}
}

// FillJar hands every well-formed cookie of the header to a net/http cookie
// jar under the given URL. Handy for replaying a browser-exported Cookie
// header through an http.Client.
func FillJar(jar http.CookieJar, u *url.URL, header string) {
	cookies := Split(header)
	std := make([]*http.Cookie, 0, len(cookies))

	for _, c := range cookies {
		std = append(std, c.Std())
	}

	jar.SetCookies(u, std)
}
