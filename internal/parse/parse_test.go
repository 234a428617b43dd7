package parse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		def  int64
		want int64
	}{
		{"numeric string", "42", 0, 42},
		{"padded string", "  42 ", 0, 42},
		{"garbage string", "abc", 0, 0},
		{"nil uses default", nil, -1, -1},
		{"int passthrough", 7, 0, 7},
		{"float truncates", 3.9, 0, 3},
		{"json number", json.Number("12"), 0, 12},
		{"float string falls back", "3.7", 0, 0},
		{"bool true", true, 0, 1},
		{"slice falls back", []int{1}, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.in, tt.def))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"currency text", "$1,234.50", 1234.50},
		{"plain string", "19.99", 19.99},
		{"padded", "  $42 ", 42},
		{"garbage", "bad", 0.0},
		{"nil", nil, 0.0},
		{"float passthrough", 12.5, 12.5},
		{"int", 3, 3.0},
		{"bool", true, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Price(tt.in), 1e-9)
		})
	}
}

func TestTime(t *testing.T) {
	got := Time("2024-03-15 10:30:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), *got)

	got = Time("2024-03-15")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, Time("not a date"))
	assert.Nil(t, Time(nil))
	assert.Nil(t, Time(""))
	assert.Nil(t, Time(12345))
}
