package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mediaplayer/internal/config"
	"github.com/ytget/mediaplayer/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	rendererSelect  *widget.Select
	seekStepEntry   *widget.Entry
	autoPlayCheck   *widget.Check
	fullscreenCheck *widget.Check
	languageSelect  *widget.Select

	languageCodes map[string]string // display name -> code
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the new values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	rendererOptions := []string{}
	for _, r := range sd.settings.GetRendererOptions() {
		rendererOptions = append(rendererOptions, r.String())
	}
	sd.rendererSelect = widget.NewSelect(rendererOptions, nil)

	sd.seekStepEntry = widget.NewEntry()
	sd.seekStepEntry.SetPlaceHolder(strconv.Itoa(config.MinSeekStepSeconds) + "-" + strconv.Itoa(config.MaxSeekStepSeconds))

	sd.autoPlayCheck = widget.NewCheck(text(KeyAutoPlay), nil)
	sd.fullscreenCheck = widget.NewCheck(text(KeyAutoFullscreen), nil)

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyPlaybackSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyRenderer)+":"),
		sd.rendererSelect,

		widget.NewLabel(text(KeySeekStep)+":"),
		sd.seekStepEntry,

		sd.autoPlayCheck,
		sd.fullscreenCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		"OK",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.rendererSelect.SetSelected(sd.settings.GetPreferredRenderer().String())
	sd.seekStepEntry.SetText(strconv.Itoa(int(sd.settings.GetSeekStep().Seconds())))
	sd.autoPlayCheck.SetChecked(sd.settings.GetAutoPlay())
	sd.fullscreenCheck.SetChecked(sd.settings.GetAutoFullscreen())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the values currently shown in the form
func (sd *SettingsDialog) apply() {
	if sd.rendererSelect.Selected != "" {
		sd.settings.SetPreferredRenderer(model.Renderer(sd.rendererSelect.Selected))
	}

	if step, err := strconv.Atoi(sd.seekStepEntry.Text); err == nil {
		sd.settings.SetSeekStepSeconds(step)
	}

	sd.settings.SetAutoPlay(sd.autoPlayCheck.Checked)
	sd.settings.SetAutoFullscreen(sd.fullscreenCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
