package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

const DefaultSettingsFile = "motorsim.ini"

// Settings are per-user preferences, stored as an ini file:
//
//	[general]
//	data_dir  = runs
//	log_level = info
//
//	[units]
//	pressure = MPa
//	force    = N
//	mass     = kg
type Settings struct {
	DataDir  string
	LogLevel string
	Pressure string
	Force    string
	Mass     string
}

func DefaultSettings() Settings {
	return Settings{
		DataDir:  "runs",
		LogLevel: "info",
		Pressure: "MPa",
		Force:    "N",
		Mass:     "kg",
	}
}

// LoadSettings reads path. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	def := DefaultSettings()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return def, fmt.Errorf("load settings: %w", err)
	}

	general := file.Section("general")
	units := file.Section("units")
	return Settings{
		DataDir:  general.Key("data_dir").MustString(def.DataDir),
		LogLevel: general.Key("log_level").MustString(def.LogLevel),
		Pressure: units.Key("pressure").MustString(def.Pressure),
		Force:    units.Key("force").MustString(def.Force),
		Mass:     units.Key("mass").MustString(def.Mass),
	}, nil
}

func SaveSettings(path string, s Settings) error {
	file := ini.Empty()
	general := file.Section("general")
	general.Key("data_dir").SetValue(s.DataDir)
	general.Key("log_level").SetValue(s.LogLevel)

	units := file.Section("units")
	units.Key("pressure").SetValue(s.Pressure)
	units.Key("force").SetValue(s.Force)
	units.Key("mass").SetValue(s.Mass)

	return file.SaveTo(path)
}
