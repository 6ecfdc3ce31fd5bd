package recipeclient

import "net/http"

// TokenSource supplies the current access token; an empty string means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// bearerTransport attaches the Authorization header to every outgoing
// request while a token is present.
type bearerTransport struct {
	base   http.RoundTripper
	source TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source != nil {
		if token := t.source.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
