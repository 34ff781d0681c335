package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "uk", want: "uk"},
		{in: "uk-UA", want: "uk"},
		{in: "ru", want: "ru"},
		{in: "en-GB", want: "en"},
		{in: "", want: "en"},
		{in: "xx", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.in))
		})
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, msgActivated, translate("en", msgActivated))
	assert.Equal(t, "Локацію активовано.", translate("uk", msgActivated))
	assert.Equal(t, "Локация активирована.", translate("ru", msgActivated))
	assert.Equal(t, msgActivated, translate("de", msgActivated))
}
