package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Log    LogConfig    `mapstructure:"log"`
	Cron   CronConfig   `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
	// ShutdownTimeout 优雅退出等待时间（秒）
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"` // sqlite, mysql, postgres
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	// SlowThreshold 慢查询阈值（毫秒）
	SlowThreshold int `mapstructure:"slow_threshold"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// CronConfig 定时任务配置，表达式为空表示关闭
type CronConfig struct {
	DBStats string `mapstructure:"db_stats"`
}
