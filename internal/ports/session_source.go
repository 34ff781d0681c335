package ports

import "context"

// SessionSource yields the raw platform credential. An empty string with a nil
// error means the host is present but has not published the credential yet.
// Sources that cannot reach any host return domain.ErrPlatformUnavailable.
type SessionSource interface {
	Name() string
	InitData(ctx context.Context) (string, error)
}
