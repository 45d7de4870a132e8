package headertest

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// RoundTripCall is a mocked Call that allows a clearer return declaration.
type RoundTripCall struct {
	*mock.Call
}

// Response sets the RoundTrip return to the given response with no error.
// The underlying *mock.Call is returned to continue method chaining if desired.
func (rtc RoundTripCall) Response(r *http.Response) *mock.Call {
	return rtc.Call.Return(r, error(nil))
}

// Error sets the RoundTrip return to the given error and a nil *http.Response.
// The underlying *mock.Call is returned to continue method chaining if desired.
func (rtc RoundTripCall) Error(err error) *mock.Call {
	return rtc.Call.Return((*http.Response)(nil), err)
}

// MockRoundTripper is a mocked http.RoundTripper.
type MockRoundTripper struct {
	mock.Mock
}

// RoundTrip executes the appropriate mocked call.
func (m *MockRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	args := m.Called(request)
	response, _ := args.Get(0).(*http.Response)
	return response, args.Error(1)
}

// Expect sets an expectation for the given request, returning a RoundTripCall
// to specify the return values.
func (m *MockRoundTripper) Expect(request *http.Request) RoundTripCall {
	return RoundTripCall{
		Call: m.On("RoundTrip", request),
	}
}

// ExpectAny sets an expectation for any request.
func (m *MockRoundTripper) ExpectAny() RoundTripCall {
	return RoundTripCall{
		Call: m.On("RoundTrip", mock.Anything),
	}
}

// ExpectHeader sets an expectation for any request carrying the given header
// value.  For a multi-valued header, the expected value must appear in the
// actual list of values.
func (m *MockRoundTripper) ExpectHeader(key, expected string) RoundTripCall {
	return RoundTripCall{
		Call: m.On("RoundTrip", mock.MatchedBy(func(request *http.Request) bool {
			for _, v := range request.Header.Values(key) {
				if v == expected {
					return true
				}
			}

			return false
		})),
	}
}
