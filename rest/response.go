package rest

import "net/http"

// Response is the outcome of one completed HTTP exchange. Error statuses are
// returned like any other response rather than being turned into a local
// failure; a server answer is never masked, the caller inspects StatusCode.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Ok reports whether the server answered with a 2xx status.
func (r *Response) Ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
