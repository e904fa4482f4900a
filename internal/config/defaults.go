package config

// Output formats accepted by list.format.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Color modes accepted by list.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	List ListConfig `json:"list" mapstructure:"list"`
}

type ListConfig struct {
	ShowHidden       bool   `json:"show_hidden" mapstructure:"show_hidden"`             // Default: true
	RespectGitignore bool   `json:"respect_gitignore" mapstructure:"respect_gitignore"` // Default: false
	Format           string `json:"format" mapstructure:"format"`                       // Default: "plain"
	Color            string `json:"color" mapstructure:"color"`                         // Default: "auto"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		List: ListConfig{
			ShowHidden:       true,
			RespectGitignore: false,
			Format:           FormatPlain,
			Color:            ColorAuto,
		},
	}
}
