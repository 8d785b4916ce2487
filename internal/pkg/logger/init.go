package logger

import (
	"Quill/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

var LogWriter io.Writer = os.Stdout

// ParseLevel 解析配置中的日志级别，无法识别时回退到 info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// NewHandler 按配置构建带 trace_id 的 slog.Handler
func NewHandler(w io.Writer, cfg config.LogConfig) log.Handler {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h log.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = log.NewTextHandler(w, opts)
	} else {
		h = log.NewJSONHandler(w, opts)
	}
	return &ContextHandler{h}
}

func InitLogger(cfg config.LogConfig) {
	LogWriter = os.Stdout
	log.SetDefault(log.New(NewHandler(LogWriter, cfg)))
}
