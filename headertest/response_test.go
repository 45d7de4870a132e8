package headertest

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	testData := []struct {
		kv       []string
		expected http.Header
	}{
		{
			kv:       nil,
			expected: http.Header{},
		},
		{
			kv: []string{
				"content-type", "text/plain",
				"multiValUE", "value1",
				"mUltivAlUE", "value2",
			},
			expected: http.Header{
				"Content-Type": {"text/plain"},
				"Multivalue":   {"value1", "value2"},
			},
		},
		{
			kv: []string{
				"content-type", "text/plain",
				"dangling",
			},
			expected: http.Header{
				"Content-Type": {"text/plain"},
				"Dangling":     {""},
			},
		},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, record.expected, NewHeader(record.kv...))
		})
	}
}

func TestNewResponse(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		response = NewResponse(http.StatusTooManyRequests, "Retry-After", "30")
	)

	require.NotNil(response)
	assert.Equal(http.StatusTooManyRequests, response.StatusCode)
	assert.Equal("30", response.Header.Get("Retry-After"))
	require.NotNil(response.Body)
	assert.NoError(response.Body.Close())
}
