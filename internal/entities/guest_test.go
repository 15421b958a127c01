package entities_test

import (
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestValidOrderID(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "lowercase uuid", id: "3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b", want: true},
		{name: "uppercase uuid", id: "3F2B8C1E-9A4D-4E2F-8B7A-1C2D3E4F5A6B", want: true},
		{name: "mixed case", id: "3f2B8c1E-9a4d-4E2f-8b7A-1c2d3e4F5a6b", want: true},
		{name: "empty", id: "", want: false},
		{name: "no dashes", id: "3f2b8c1e9a4d4e2f8b7a1c2d3e4f5a6b", want: false},
		{name: "braced", id: "{3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b}", want: false},
		{name: "urn prefix", id: "urn:uuid:3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b", want: false},
		{name: "non hex", id: "3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6z", want: false},
		{name: "short group", id: "3f2b8c1-9a4d-4e2f-8b7a-1c2d3e4f5a6b", want: false},
		{name: "trailing newline", id: "3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b\n", want: false},
		{name: "sql injection", id: "' OR 1=1 --", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.ValidOrderID(tc.id))
		})
	}
}

func TestValidAccessToken(t *testing.T) {
	testCases := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "64 lowercase hex", token: strings.Repeat("ab", 32), want: true},
		{name: "64 uppercase hex", token: strings.Repeat("AB", 32), want: true},
		{name: "63 chars", token: strings.Repeat("a", 63), want: false},
		{name: "65 chars", token: strings.Repeat("a", 65), want: false},
		{name: "0x prefix", token: "0x" + strings.Repeat("a", 62), want: false},
		{name: "non hex", token: strings.Repeat("g", 64), want: false},
		{name: "empty", token: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.ValidAccessToken(tc.token))
		})
	}
}

func TestOrder_IsGuest(t *testing.T) {
	owner := "7d9f0c1e-1111-4e2f-8b7a-1c2d3e4f5a6b"

	assert.True(t, entities.Order{}.IsGuest())
	assert.False(t, entities.Order{UserID: &owner}.IsGuest())
}
