package config

import "github.com/spf13/viper"

// AIConfig configures the profile-extraction collaborator. An empty key
// disables the extraction endpoint instead of failing startup.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
}

func (config AIConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("ai.key", "AI_KEY")
	if err != nil {
		return err
	}

	return viper.BindEnv("ai.model", "AI_MODEL")
}
