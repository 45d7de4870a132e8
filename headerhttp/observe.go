package headerhttp

import (
	"net/http"

	"github.com/xmidt-org/httpheader"
)

// Observer receives the typed headers extracted from a response.  The
// values hold whatever could be parsed, and err holds any parse failures.
// Observers must not modify the response.
type Observer func(response *http.Response, values httpheader.Values, err error)

// Observe creates a RoundTripperConstructor that extracts the given Set from
// every response and passes the results to the observer.  Failed round trips
// are not observed.  The response and error from the decorated round tripper
// are always returned unchanged.
func Observe(set httpheader.Set, o Observer) RoundTripperConstructor {
	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
			response, err := next.RoundTrip(request)
			if err == nil && response != nil {
				values, extractErr := set.Extract(httpheader.FromResponse(response))
				o(response, values, extractErr)
			}

			return response, err
		})
	}
}

// Bind creates a RoundTripperConstructor that applies a Binding to every
// response.  Binding errors are reported to onError, if supplied.
//
// The binding's destinations are written on every response, so callers
// that share them across goroutines must synchronize access.
func Bind(b httpheader.Binding, onError func(*http.Response, error)) RoundTripperConstructor {
	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
			response, err := next.RoundTrip(request)
			if err == nil && response != nil {
				if bindErr := b.Bind(httpheader.FromResponse(response)); bindErr != nil && onError != nil {
					onError(response, bindErr)
				}
			}

			return response, err
		})
	}
}
