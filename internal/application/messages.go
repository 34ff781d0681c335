package application

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgCredentialMissing   = "Could not read your session. Reopen the app from the bot."
	msgStandalone          = "Open this app from the bot, or sign in through the browser."
	msgStatusFailed        = "Could not load your subscription."
	msgSessionExpired      = "Your session has expired. Reopen the app."
	msgLocationsFailed     = "Could not load locations."
	msgPlansFailed         = "Could not load plans."
	msgConfigFailed        = "Could not load the connection config."
	msgActivateFailed      = "Could not activate the location."
	msgActivated           = "Location activated."
	msgMethodUnavailable   = "This payment method is unavailable for this plan."
	msgPaymentFailed       = "Could not start the payment."
	msgPaymentStarted      = "Complete the payment to extend your subscription."
	msgConfigCopied        = "Config copied to clipboard."
	msgCopyFailed          = "Could not copy the config."
	msgConfigNotLoaded     = "The connection config is not loaded yet."
	msgBrowserLoginFailed  = "Could not start browser login."
	msgBrowserLoginExpired = "The login link has expired. Start again."
	msgGeneric             = "Something went wrong. Try again."
)

var translations = map[language.Tag]map[string]string{
	language.Russian: {
		msgCredentialMissing:   "Не удалось прочитать сессию. Откройте приложение из бота заново.",
		msgStandalone:          "Откройте приложение из бота или войдите через браузер.",
		msgStatusFailed:        "Не удалось загрузить подписку.",
		msgSessionExpired:      "Сессия истекла. Откройте приложение заново.",
		msgLocationsFailed:     "Не удалось загрузить локации.",
		msgPlansFailed:         "Не удалось загрузить тарифы.",
		msgConfigFailed:        "Не удалось загрузить конфигурацию.",
		msgActivateFailed:      "Не удалось активировать локацию.",
		msgActivated:           "Локация активирована.",
		msgMethodUnavailable:   "Этот способ оплаты недоступен для тарифа.",
		msgPaymentFailed:       "Не удалось начать оплату.",
		msgPaymentStarted:      "Завершите оплату, чтобы продлить подписку.",
		msgConfigCopied:        "Конфигурация скопирована.",
		msgCopyFailed:          "Не удалось скопировать конфигурацию.",
		msgConfigNotLoaded:     "Конфигурация ещё не загружена.",
		msgBrowserLoginFailed:  "Не удалось начать вход через браузер.",
		msgBrowserLoginExpired: "Ссылка для входа устарела. Начните заново.",
		msgGeneric:             "Что-то пошло не так. Попробуйте ещё раз.",
	},
	language.Ukrainian: {
		msgCredentialMissing:   "Не вдалося прочитати сесію. Відкрийте застосунок із бота знову.",
		msgStandalone:          "Відкрийте застосунок із бота або увійдіть через браузер.",
		msgStatusFailed:        "Не вдалося завантажити підписку.",
		msgSessionExpired:      "Сесія закінчилася. Відкрийте застосунок знову.",
		msgLocationsFailed:     "Не вдалося завантажити локації.",
		msgPlansFailed:         "Не вдалося завантажити тарифи.",
		msgConfigFailed:        "Не вдалося завантажити конфігурацію.",
		msgActivateFailed:      "Не вдалося активувати локацію.",
		msgActivated:           "Локацію активовано.",
		msgMethodUnavailable:   "Цей спосіб оплати недоступний для тарифу.",
		msgPaymentFailed:       "Не вдалося почати оплату.",
		msgPaymentStarted:      "Завершіть оплату, щоб продовжити підписку.",
		msgConfigCopied:        "Конфігурацію скопійовано.",
		msgCopyFailed:          "Не вдалося скопіювати конфігурацію.",
		msgConfigNotLoaded:     "Конфігурацію ще не завантажено.",
		msgBrowserLoginFailed:  "Не вдалося почати вхід через браузер.",
		msgBrowserLoginExpired: "Посилання для входу застаріло. Почніть знову.",
		msgGeneric:             "Щось пішло не так. Спробуйте ще раз.",
	},
}

var (
	supportedLanguages = []language.Tag{language.English, language.Russian, language.Ukrainian}
	languageMatcher    = language.NewMatcher(supportedLanguages)
	messageCatalog     = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := builder.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return builder
}

// MatchLanguage maps a free-form language code onto one of the supported
// interface languages. Unknown or empty input yields "en".
func MatchLanguage(raw string) string {
	tag, _ := language.MatchStrings(languageMatcher, raw)
	base, _ := tag.Base()
	return base.String()
}

func translate(lang, key string) string {
	printer := message.NewPrinter(language.Make(lang), message.Catalog(messageCatalog))
	return printer.Sprintf(key)
}
