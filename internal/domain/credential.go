package domain

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Credential is the platform-issued session proof. Its content is opaque; the
// client only relies on it being non-empty.
type Credential string

func (c Credential) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// LanguageCode reads user.language_code from a query-encoded payload. It
// returns "" for anything it cannot parse.
func (c Credential) LanguageCode() string {
	values, err := url.ParseQuery(string(c))
	if err != nil {
		return ""
	}

	raw := values.Get("user")
	if raw == "" {
		return ""
	}

	var user struct {
		LanguageCode string `json:"language_code"`
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return ""
	}

	return strings.TrimSpace(user.LanguageCode)
}
