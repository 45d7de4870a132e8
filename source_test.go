package httpheader

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHeader(t *testing.T) {
	testData := []struct {
		header        http.Header
		field         string
		expectedValue string
		expectedFound bool
	}{
		{
			header: nil,
			field:  "X-Test",
		},
		{
			header: http.Header{},
			field:  "X-Test",
		},
		{
			header:        http.Header{"X-Test": {"value"}},
			field:         "X-Test",
			expectedValue: "value",
			expectedFound: true,
		},
		{
			header:        http.Header{"X-Test": {"value"}},
			field:         "x-test",
			expectedValue: "value",
			expectedFound: true,
		},
		{
			header:        http.Header{"X-Test": {""}},
			field:         "X-Test",
			expectedValue: "",
			expectedFound: true,
		},
		{
			header: http.Header{"X-Test": {}},
			field:  "X-Test",
		},
		{
			header:        http.Header{"Vary": {"Accept", "Accept-Encoding"}},
			field:         "Vary",
			expectedValue: "Accept, Accept-Encoding",
			expectedFound: true,
		},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert := assert.New(t)
			value, found := FromHeader(record.header).Lookup(record.field)
			assert.Equal(record.expectedValue, value)
			assert.Equal(record.expectedFound, found)
		})
	}
}

func TestFromResponse(t *testing.T) {
	assert := assert.New(t)

	_, found := FromResponse(nil).Lookup("X-Test")
	assert.False(found)

	value, found := FromResponse(&http.Response{
		Header: http.Header{"X-Test": {"value"}},
	}).Lookup("X-Test")

	assert.Equal("value", value)
	assert.True(found)
}

func TestFromRequest(t *testing.T) {
	var (
		assert  = assert.New(t)
		request = httptest.NewRequest("GET", "/", nil)
	)

	_, found := FromRequest(nil).Lookup("X-Test")
	assert.False(found)

	request.Header.Set("X-Test", "value")
	value, found := FromRequest(request).Lookup("X-Test")
	assert.Equal("value", value)
	assert.True(found)
}

func TestFromMap(t *testing.T) {
	var (
		assert = assert.New(t)
		src    = FromMap(map[string]string{"X-Test": "value"})
	)

	value, found := src.Lookup("X-Test")
	assert.Equal("value", value)
	assert.True(found)

	_, found = src.Lookup("x-test")
	assert.False(found)

	_, found = FromMap(nil).Lookup("X-Test")
	assert.False(found)
}
