package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:quill.db?_foreign_keys=on")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 10)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.slow_threshold", 200)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cron.db_stats", "@every 5m")
}

// LoadConfig 从文件加载配置，环境变量 QUILL_* 可覆盖文件中的值
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
