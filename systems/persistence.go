package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/skyward/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings is the subset of the config kept between runs.
type SavedSettings struct {
	AnalogDeadzone float64 `json:"analogDeadzone"`
	DrawProbe      bool    `json:"drawProbe"`
	ShowHUD        bool    `json:"showHud"`
}

// settingsStore is nil until InitPersistence succeeds; every call is then a no-op.
var settingsStore *gdata.Manager

// InitPersistence opens the per-user data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{AppName: "skyward"})
	if err != nil {
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings reads the saved settings. A missing or unreadable item yields
// nil so the defaults stay in place.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}
	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings writes s, replacing what was saved before.
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the persisted subset of the live config.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		AnalogDeadzone: cfg.Input.AnalogDeadzone,
		DrawProbe:      cfg.Debug.DrawProbe,
		ShowHUD:        cfg.Debug.ShowHUD,
	}
}

// ApplySavedSettings copies loaded settings onto the live config. An out of
// range deadzone is ignored.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.AnalogDeadzone >= 0 && saved.AnalogDeadzone <= 1 {
		cfg.Input.AnalogDeadzone = saved.AnalogDeadzone
	}
	cfg.Debug.DrawProbe = saved.DrawProbe
	cfg.Debug.ShowHUD = saved.ShowHUD
}
