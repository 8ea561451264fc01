package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyOpen              = "open"
	KeyPlay              = "play"
	KeyPause             = "pause"
	KeyStop              = "stop"
	KeyFullscreen        = "fullscreen"
	KeyVolume            = "volume"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyQuit              = "quit"
	KeyShowInFolder      = "show_in_folder"
	KeyLanguage          = "language"
	KeyRenderer          = "renderer"
	KeySeekStep          = "seek_step"
	KeyNoFile            = "no_file"
	KeyWarning           = "warning"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPlaybackSettings  = "playback_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyAutoPlay          = "auto_play"
	KeyAutoFullscreen    = "auto_fullscreen"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Media Player",
		KeyOpen:              "Open",
		KeyPlay:              "Play",
		KeyPause:             "Pause",
		KeyStop:              "Stop",
		KeyFullscreen:        "Fullscreen",
		KeyVolume:            "Volume",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyQuit:              "Quit",
		KeyShowInFolder:      "Show in Folder",
		KeyLanguage:          "Language",
		KeyRenderer:          "Video Renderer",
		KeySeekStep:          "Seek Step (seconds)",
		KeyNoFile:            "No file loaded",
		KeyWarning:           "Warning",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPlaybackSettings:  "Playback Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeyAutoPlay:          "Start playback when a file is opened",
		KeyAutoFullscreen:    "Enter fullscreen when a file is opened",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Медиаплеер",
		KeyOpen:              "Открыть",
		KeyPlay:              "Играть",
		KeyPause:             "Пауза",
		KeyStop:              "Стоп",
		KeyFullscreen:        "Полный экран",
		KeyVolume:            "Громкость",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyQuit:              "Выход",
		KeyShowInFolder:      "Показать в папке",
		KeyLanguage:          "Язык",
		KeyRenderer:          "Видеовывод",
		KeySeekStep:          "Шаг перемотки (секунды)",
		KeyNoFile:            "Файл не открыт",
		KeyWarning:           "Предупреждение",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPlaybackSettings:  "Воспроизведение",
		KeyInterfaceSettings: "Интерфейс",
		KeyAutoPlay:          "Начинать воспроизведение при открытии файла",
		KeyAutoFullscreen:    "Переходить в полный экран при открытии файла",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Reprodutor de Mídia",
		KeyOpen:              "Abrir",
		KeyPlay:              "Reproduzir",
		KeyPause:             "Pausar",
		KeyStop:              "Parar",
		KeyFullscreen:        "Tela Cheia",
		KeyVolume:            "Volume",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyQuit:              "Sair",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyLanguage:          "Idioma",
		KeyRenderer:          "Renderizador de Vídeo",
		KeySeekStep:          "Passo de Busca (segundos)",
		KeyNoFile:            "Nenhum arquivo aberto",
		KeyWarning:           "Aviso",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPlaybackSettings:  "Reprodução",
		KeyInterfaceSettings: "Interface",
		KeyAutoPlay:          "Iniciar reprodução ao abrir um arquivo",
		KeyAutoFullscreen:    "Entrar em tela cheia ao abrir um arquivo",
	}
}
