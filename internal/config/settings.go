package config

// Environment names accepted by Settings.Env.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Skip policies accepted by Settings.SkipPolicy.
const (
	SkipDiscard = "discard"
	SkipReturn  = "return"
)

// UI modes accepted by Settings.UI.
const (
	UIAuto  = "auto"
	UIColor = "color"
	UIPlain = "plain"
)

// Settings holds optional runtime settings layered under the positional CLI.
type Settings struct {
	Env         string `yaml:"env" env:"ENV"`                   // logger flavour (local, production)
	SkipPolicy  string `yaml:"skip_policy" env:"SKIP_POLICY"`   // what happens to a skipped question
	UI          string `yaml:"ui" env:"UI"`                     // auto, color or plain output
	ClearScreen bool   `yaml:"clear_screen" env:"CLEAR_SCREEN"` // clear the terminal between rounds
	LogFile     string `yaml:"log_file" env:"LOG_FILE"`         // diagnostic log path, empty discards logs
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Env:         EnvLocal,
		SkipPolicy:  SkipDiscard,
		UI:          UIAuto,
		ClearScreen: true,
	}
}
