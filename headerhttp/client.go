package headerhttp

import (
	"net/http"
	"time"
)

// TransportConfig is the unmarshaled configuration for an *http.Transport.
type TransportConfig struct {
	TLSHandshakeTimeout    time.Duration
	DisableKeepAlives      bool
	DisableCompression     bool
	MaxIdleConns           int
	MaxIdleConnsPerHost    int
	MaxConnsPerHost        int
	IdleConnTimeout        time.Duration
	ResponseHeaderTimeout  time.Duration
	ExpectContinueTimeout  time.Duration
	MaxResponseHeaderBytes int64
	ForceAttemptHTTP2      bool
}

// NewTransport creates an *http.Transport from this configuration.
func (tc TransportConfig) NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		TLSHandshakeTimeout:    tc.TLSHandshakeTimeout,
		DisableKeepAlives:      tc.DisableKeepAlives,
		DisableCompression:     tc.DisableCompression,
		MaxIdleConns:           tc.MaxIdleConns,
		MaxIdleConnsPerHost:    tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:        tc.MaxConnsPerHost,
		IdleConnTimeout:        tc.IdleConnTimeout,
		ResponseHeaderTimeout:  tc.ResponseHeaderTimeout,
		ExpectContinueTimeout:  tc.ExpectContinueTimeout,
		MaxResponseHeaderBytes: tc.MaxResponseHeaderBytes,
		ForceAttemptHTTP2:      tc.ForceAttemptHTTP2,
	}
}

// ClientConfig is the unmarshaled configuration for an *http.Client.
type ClientConfig struct {
	Timeout   time.Duration
	Transport TransportConfig
}

// NewClient creates an *http.Client whose transport is decorated by the
// given constructors, in order.
func (cc ClientConfig) NewClient(c ...RoundTripperConstructor) *http.Client {
	return cc.NewClientWithTransport(cc.Transport.NewTransport(), c...)
}

// NewClientWithTransport is like NewClient, but decorates an externally
// supplied round tripper instead of one built from TransportConfig.
func (cc ClientConfig) NewClientWithTransport(next http.RoundTripper, c ...RoundTripperConstructor) *http.Client {
	return &http.Client{
		Timeout:   cc.Timeout,
		Transport: NewRoundTripperChain(c...).Then(next),
	}
}
