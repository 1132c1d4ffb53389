package ui

import (
	"fmt"
	"time"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyShorten           = "shorten"
	KeyShortening        = "shortening"
	KeyShortenAnother    = "shorten_another"
	KeyYourShortURL      = "your_short_url"
	KeyCopy              = "copy"
	KeyCopied            = "copied"
	KeyCopiedToClipboard = "copied_to_clipboard"
	KeyOpen              = "open"
	KeyRemove            = "remove"
	KeyExpires           = "expires"
	KeyHistory           = "history"
	KeyHistoryEmpty      = "history_empty"
	KeyClearHistory      = "clear_history"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyServiceURL        = "service_url"
	KeyRequestTimeout    = "request_timeout"
	KeyDefaultExpiry     = "default_expiry"
	KeyAutoCopy          = "auto_copy"
	KeyHistoryLimit      = "history_limit"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyEnterURL          = "enter_url"
	KeyExpiryDays        = "expiry_days"
	KeySettingsSaved     = "settings_saved"
	KeySuccess           = "success"
	KeyURLShortened      = "url_shortened"
	KeyError             = "error"
	KeyShortenFailed     = "shorten_failed"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidURL        = "invalid_url"
	KeyInvalidExpiry     = "invalid_expiry"
	KeyErrorOpeningLink  = "error_opening_link"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// Month names for expiry date formatting, indexed by time.Month-1
var (
	monthsEN = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthsRU = [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	monthsPT = [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

// FormatLongDate renders a date with a spelled-out month in the current
// language, e.g. "July 1, 2025" for English. Callers convert to the zone
// they want displayed before calling.
func (l *Localization) FormatLongDate(t time.Time) string {
	month := int(t.Month()) - 1

	switch l.currentLanguage {
	case "ru":
		return fmt.Sprintf("%d %s %d г.", t.Day(), monthsRU[month], t.Year())
	case "pt":
		return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPT[month], t.Year())
	default:
		return fmt.Sprintf("%s %d, %d", monthsEN[month], t.Day(), t.Year())
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Link Shortener",
		KeyShorten:           "Shorten",
		KeyShortening:        "Shortening...",
		KeyShortenAnother:    "Shorten another URL",
		KeyYourShortURL:      "Your shortened URL",
		KeyCopy:              "Copy",
		KeyCopied:            "Copied!",
		KeyCopiedToClipboard: "Short link copied to clipboard",
		KeyOpen:              "Open",
		KeyRemove:            "Remove",
		KeyExpires:           "Expires",
		KeyHistory:           "History",
		KeyHistoryEmpty:      "No shortened links yet",
		KeyClearHistory:      "Clear",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyServiceURL:        "Service URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyDefaultExpiry:     "Default Expiry (days)",
		KeyAutoCopy:          "Copy short link automatically",
		KeyHistoryLimit:      "History Limit",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyEnterURL:          "Enter a long URL (https://example.com/page)",
		KeyExpiryDays:        "Expiry in days",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySuccess:           "Success",
		KeyURLShortened:      "Your URL has been shortened",
		KeyError:             "Error",
		KeyShortenFailed:     "Failed to shorten URL. Please try again.",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyInvalidURL:        "Please enter a valid URL",
		KeyInvalidExpiry:     "Expiry must be a positive number of days",
		KeyErrorOpeningLink:  "Error opening link",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Сокращатель ссылок",
		KeyShorten:           "Сократить",
		KeyShortening:        "Сокращение...",
		KeyShortenAnother:    "Сократить другой URL",
		KeyYourShortURL:      "Ваша короткая ссылка",
		KeyCopy:              "Копировать",
		KeyCopied:            "Скопировано!",
		KeyCopiedToClipboard: "Короткая ссылка скопирована в буфер обмена",
		KeyOpen:              "Открыть",
		KeyRemove:            "Удалить",
		KeyExpires:           "Истекает",
		KeyHistory:           "История",
		KeyHistoryEmpty:      "Сокращённых ссылок пока нет",
		KeyClearHistory:      "Очистить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyServiceURL:        "URL сервиса",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeyDefaultExpiry:     "Срок действия по умолчанию (дни)",
		KeyAutoCopy:          "Автоматически копировать короткую ссылку",
		KeyHistoryLimit:      "Лимит истории",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyEnterURL:          "Введите длинный URL (https://example.com/page)",
		KeyExpiryDays:        "Срок действия в днях",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySuccess:           "Успех",
		KeyURLShortened:      "Ваш URL был сокращён",
		KeyError:             "Ошибка",
		KeyShortenFailed:     "Не удалось сократить URL. Попробуйте ещё раз.",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyInvalidURL:        "Пожалуйста, введите корректный URL",
		KeyInvalidExpiry:     "Срок действия должен быть положительным числом дней",
		KeyErrorOpeningLink:  "Ошибка открытия ссылки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Encurtador de Links",
		KeyShorten:           "Encurtar",
		KeyShortening:        "Encurtando...",
		KeyShortenAnother:    "Encurtar outro URL",
		KeyYourShortURL:      "Seu URL encurtado",
		KeyCopy:              "Copiar",
		KeyCopied:            "Copiado!",
		KeyCopiedToClipboard: "Link curto copiado para a área de transferência",
		KeyOpen:              "Abrir",
		KeyRemove:            "Remover",
		KeyExpires:           "Expira",
		KeyHistory:           "Histórico",
		KeyHistoryEmpty:      "Nenhum link encurtado ainda",
		KeyClearHistory:      "Limpar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyServiceURL:        "URL do Serviço",
		KeyRequestTimeout:    "Tempo Limite da Requisição (segundos)",
		KeyDefaultExpiry:     "Expiração Padrão (dias)",
		KeyAutoCopy:          "Copiar link curto automaticamente",
		KeyHistoryLimit:      "Limite do Histórico",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyEnterURL:          "Digite um URL longo (https://example.com/page)",
		KeyExpiryDays:        "Expiração em dias",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySuccess:           "Sucesso",
		KeyURLShortened:      "Seu URL foi encurtado",
		KeyError:             "Erro",
		KeyShortenFailed:     "Falha ao encurtar o URL. Tente novamente.",
		KeyPleaseEnterURL:    "Por favor, digite um URL",
		KeyInvalidURL:        "Por favor, digite um URL válido",
		KeyInvalidExpiry:     "A expiração deve ser um número positivo de dias",
		KeyErrorOpeningLink:  "Erro ao abrir o link",
	}
}
