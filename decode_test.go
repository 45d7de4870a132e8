package httpheader

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodedHeaders struct {
	Limit       int           `header:"X-RateLimit-Limit"`
	Remaining   *int          `header:"X-RateLimit-Remaining"`
	Scopes      []string      `header:"X-OAuth-Scopes"`
	Reset       time.Time     `header:"X-Reset-Time"`
	Location    *url.URL      `header:"Location"`
	Timeout     time.Duration `header:"X-Timeout"`
	Cached      bool          `header:"X-Cached"`
	ContentType string        `header:"Content-Type"`
	Etag        string
}

func TestDecode(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		actual decodedHeaders
		header = http.Header{
			"X-Ratelimit-Limit":     {"5000"},
			"X-Ratelimit-Remaining": {"4999"},
			"X-Oauth-Scopes":        {"repo, user", "gist"},
			"X-Reset-Time":          {"2015-01-01T00:00:00Z"},
			"Location":              {"https://example.com/next"},
			"X-Timeout":             {"15s"},
			"X-Cached":              {"true"},
			"Content-Type":          {"application/json"},
			"Etag":                  {`"abc"`},
			"X-Unrelated":           {"ignored"},
		}
	)

	require.NoError(Decode(header, &actual))
	assert.Equal(5000, actual.Limit)
	require.NotNil(actual.Remaining)
	assert.Equal(4999, *actual.Remaining)
	assert.Equal([]string{"repo", "user", "gist"}, actual.Scopes)
	assert.True(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC).Equal(actual.Reset))
	require.NotNil(actual.Location)
	assert.Equal("https://example.com/next", actual.Location.String())
	assert.Equal(15*time.Second, actual.Timeout)
	assert.True(actual.Cached)
	assert.Equal("application/json", actual.ContentType)
	assert.Equal(`"abc"`, actual.Etag)
}

func TestDecode_Missing(t *testing.T) {
	var (
		assert = assert.New(t)
		actual decodedHeaders
	)

	assert.NoError(Decode(nil, &actual))
	assert.Zero(actual.Limit)
	assert.Nil(actual.Remaining)

	assert.Error(Decode(nil, &actual, ErrorUnset(true)))
}

func TestDecode_Malformed(t *testing.T) {
	var actual decodedHeaders
	assert.Error(t, Decode(http.Header{"X-Ratelimit-Limit": {"lots"}}, &actual))
}

func TestDecode_InvalidTarget(t *testing.T) {
	var actual decodedHeaders
	assert.Error(t, Decode(http.Header{}, actual))
}

func TestDecodeResponse(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		actual  decodedHeaders
	)

	require.NoError(DecodeResponse(&http.Response{
		Header: http.Header{"X-Ratelimit-Limit": {"10"}},
	}, &actual))

	assert.Equal(10, actual.Limit)
	assert.NoError(DecodeResponse(nil, &actual))
}

func TestWeaklyTypedInput(t *testing.T) {
	var actual struct {
		Limit int `header:"X-Limit"`
	}

	assert.Error(t, Decode(http.Header{"X-Limit": {"10"}}, &actual, WeaklyTypedInput(false)))
}

func TestListHookFunc(t *testing.T) {
	var (
		assert = assert.New(t)

		stringType = reflect.TypeOf("")
		sliceType  = reflect.TypeOf([]string{})
		bytesType  = reflect.TypeOf([]byte{})
	)

	v, err := ListHookFunc(stringType, sliceType, " a , b ")
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, v)

	v, err = ListHookFunc(stringType, bytesType, "a,b")
	assert.NoError(err)
	assert.Equal("a,b", v)

	v, err = ListHookFunc(stringType, stringType, "a,b")
	assert.NoError(err)
	assert.Equal("a,b", v)
}

func TestURLHookFunc(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		stringType = reflect.TypeOf("")
	)

	v, err := URLHookFunc(stringType, urlPtrType, "http://example.com")
	require.NoError(err)
	require.IsType((*url.URL)(nil), v)
	assert.Equal("example.com", v.(*url.URL).Host)

	v, err = URLHookFunc(stringType, urlType, "http://example.com")
	require.NoError(err)
	require.IsType(url.URL{}, v)

	_, err = URLHookFunc(stringType, urlPtrType, "://bad")
	assert.Error(err)

	_, err = URLHookFunc(stringType, urlPtrType, "")
	assert.ErrorIs(err, errInvalidURL)

	_, err = URLHookFunc(stringType, urlType, "not a url")
	assert.ErrorIs(err, errInvalidURL)

	v, err = URLHookFunc(stringType, stringType, "http://example.com")
	assert.NoError(err)
	assert.Equal("http://example.com", v)
}

type textValue struct {
	text string
}

func (tv *textValue) UnmarshalText(b []byte) error {
	tv.text = string(b)
	return nil
}

func TestTextUnmarshalerHookFunc(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		stringType = reflect.TypeOf("")
	)

	v, err := TextUnmarshalerHookFunc(stringType, reflect.TypeOf(textValue{}), "value")
	require.NoError(err)
	assert.Equal(textValue{text: "value"}, v)

	v, err = TextUnmarshalerHookFunc(stringType, reflect.TypeOf(&textValue{}), "value")
	require.NoError(err)
	assert.Equal(&textValue{text: "value"}, v)

	v, err = TextUnmarshalerHookFunc(stringType, reflect.TypeOf(0), "value")
	require.NoError(err)
	assert.Equal("value", v)

	v, err = TextUnmarshalerHookFunc(reflect.TypeOf(0), reflect.TypeOf(textValue{}), 123)
	require.NoError(err)
	assert.Equal(123, v)
}

func TestDefaultDecodeOptions(t *testing.T) {
	var (
		assert = assert.New(t)
		dc     mapstructure.DecoderConfig
	)

	DefaultDecodeOptions(&dc)
	assert.NotNil(dc.DecodeHook)
}

func TestMerge(t *testing.T) {
	var (
		assert = assert.New(t)
		dc     mapstructure.DecoderConfig
	)

	Merge(
		nil,
		[]viper.DecoderConfigOption{
			func(dc *mapstructure.DecoderConfig) { dc.TagName = "first" },
		},
		[]viper.DecoderConfigOption{
			func(dc *mapstructure.DecoderConfig) { dc.ZeroFields = true },
			func(dc *mapstructure.DecoderConfig) { dc.TagName = "second" },
		},
	)(&dc)

	assert.Equal("second", dc.TagName)
	assert.True(dc.ZeroFields)
}
