package domain

import "time"

type ScreenKind string

const (
	ScreenLoading          ScreenKind = "loading"
	ScreenFatalError       ScreenKind = "fatal_error"
	ScreenStandaloneGate   ScreenKind = "standalone_gate"
	ScreenBrowserLoginGate ScreenKind = "browser_login_gate"
	ScreenHome             ScreenKind = "home"
	ScreenConfig           ScreenKind = "config"
	ScreenPlans            ScreenKind = "plans"
	ScreenHelp             ScreenKind = "help"
)

type BrowserLoginStatus string

const (
	BrowserLoginPending   BrowserLoginStatus = "pending"
	BrowserLoginConfirmed BrowserLoginStatus = "confirmed"
	BrowserLoginExpired   BrowserLoginStatus = "expired"
)

type BrowserLogin struct {
	ID        string
	ExpiresAt time.Time
	Status    BrowserLoginStatus
	BotURL    string
}

type Screen struct {
	Kind    ScreenKind
	Message string
	Login   *BrowserLogin
}

func LoadingScreen() Screen {
	return Screen{Kind: ScreenLoading}
}

// Functional reports whether the session is usable on this screen.
func (s Screen) Functional() bool {
	switch s.Kind {
	case ScreenHome, ScreenConfig, ScreenPlans, ScreenHelp:
		return true
	default:
		return false
	}
}

// BackVisible reports whether the host back control should be shown.
func (s Screen) BackVisible() bool {
	return s.Functional() && s.Kind != ScreenHome
}

type ScreenEventKind string

const (
	EventCredentialMissing ScreenEventKind = "credential_missing"
	EventStandalone        ScreenEventKind = "standalone"
	EventStatusLoaded      ScreenEventKind = "status_loaded"
	EventStatusFailed      ScreenEventKind = "status_failed"
	EventLoginUpdated      ScreenEventKind = "login_updated"
	EventLoginConfirmed    ScreenEventKind = "login_confirmed"
	EventOpenConfig        ScreenEventKind = "open_config"
	EventOpenPlans         ScreenEventKind = "open_plans"
	EventOpenHelp          ScreenEventKind = "open_help"
	EventBack              ScreenEventKind = "back"
	EventRetry             ScreenEventKind = "retry"
)

type ScreenEvent struct {
	Kind        ScreenEventKind
	Message     string
	Login       *BrowserLogin
	HasLocation bool
}

// Transition returns the screen that follows current after event. Events that
// do not apply to the current screen leave it unchanged.
func Transition(current Screen, event ScreenEvent) Screen {
	switch event.Kind {
	case EventCredentialMissing, EventStatusFailed:
		if current.Kind == ScreenLoading {
			return Screen{Kind: ScreenFatalError, Message: event.Message}
		}
	case EventStandalone:
		if current.Kind == ScreenLoading {
			return Screen{Kind: ScreenStandaloneGate, Message: event.Message}
		}
	case EventStatusLoaded:
		if current.Kind == ScreenLoading {
			return Screen{Kind: ScreenHome}
		}
	case EventLoginUpdated:
		if (current.Kind == ScreenStandaloneGate || current.Kind == ScreenBrowserLoginGate) && event.Login != nil {
			login := *event.Login
			return Screen{Kind: ScreenBrowserLoginGate, Login: &login}
		}
	case EventLoginConfirmed:
		if current.Kind == ScreenBrowserLoginGate {
			return LoadingScreen()
		}
	case EventOpenConfig:
		if current.Kind == ScreenHome && event.HasLocation {
			return Screen{Kind: ScreenConfig}
		}
	case EventOpenPlans:
		if current.Kind == ScreenHome {
			return Screen{Kind: ScreenPlans}
		}
	case EventOpenHelp:
		if current.Functional() && current.Kind != ScreenHelp {
			return Screen{Kind: ScreenHelp}
		}
	case EventBack:
		if current.BackVisible() {
			return Screen{Kind: ScreenHome}
		}
	case EventRetry:
		switch current.Kind {
		case ScreenFatalError, ScreenStandaloneGate, ScreenBrowserLoginGate:
			return LoadingScreen()
		}
	}

	return current
}

type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

type PaymentRequest struct {
	VariantID      string
	Provider       Provider
	IdempotencyKey string
}

type ContinuationKind string

const (
	ContinuationCheckoutURL ContinuationKind = "checkout_url"
	ContinuationInvoice     ContinuationKind = "invoice"
)

// PaymentContinuation is what the presentation layer opens to finish a
// purchase: an external checkout page or an in-host invoice.
type PaymentContinuation struct {
	Kind    ContinuationKind
	URL     string
	Invoice string
}
