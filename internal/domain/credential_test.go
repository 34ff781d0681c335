package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialLanguageCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Credential
		want string
	}{
		{name: "query payload", in: Credential("query_id=1&user=%7B%22id%22%3A1%2C%22language_code%22%3A%22uk%22%7D&hash=abc"), want: "uk"},
		{name: "no user", in: Credential("query_id=1&hash=abc"), want: ""},
		{name: "broken json", in: Credential("user=%7Bnope"), want: ""},
		{name: "opaque token", in: Credential("opaque"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.LanguageCode())
		})
	}
}

func TestCredentialIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Credential("").IsEmpty())
	assert.True(t, Credential("  ").IsEmpty())
	assert.False(t, Credential("x").IsEmpty())
}

func TestParseSubscriptionState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SubscriptionActive, ParseSubscriptionState("active"))
	assert.Equal(t, SubscriptionExpired, ParseSubscriptionState(" EXPIRED "))
	assert.Equal(t, SubscriptionNew, ParseSubscriptionState("trial"))
	assert.Equal(t, 100, ClampPercent(140))
	assert.Equal(t, 0, ClampPercent(-3))
}
