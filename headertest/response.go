package headertest

import (
	"io"
	"net/http"
	"strings"
)

// NewHeader builds an http.Header from a sequence of key/value pairs.  Keys
// are canonicalized, and repeated keys produce multiple values.  If the number
// of strings is odd, the last key is given an empty value.
func NewHeader(kv ...string) http.Header {
	h := make(http.Header, len(kv)/2)
	for i, j := 0, 1; i < len(kv); i, j = i+2, j+2 {
		if j < len(kv) {
			h.Add(kv[i], kv[j])
		} else {
			// dangling key!
			h.Add(kv[i], "")
		}
	}

	return h
}

// NewResponse creates a minimal *http.Response with the given status code
// and headers, as produced by NewHeader.  The body is empty but non-nil.
func NewResponse(statusCode int, kv ...string) *http.Response {
	return &http.Response{
		Status:     http.StatusText(statusCode),
		StatusCode: statusCode,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     NewHeader(kv...),
		Body:       io.NopCloser(strings.NewReader("")),
	}
}
