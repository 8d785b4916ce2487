package job

import (
	"database/sql"
	log "log/slog"
)

// StatsSource 连接池状态来源，*sql.DB 即满足
type StatsSource interface {
	Stats() sql.DBStats
}

// DBStatsJob 定时输出数据库连接池状态
type DBStatsJob struct {
	src StatsSource
}

func NewDBStatsJob(src StatsSource) *DBStatsJob {
	return &DBStatsJob{src: src}
}

func (s *DBStatsJob) Run() {
	st := s.src.Stats()
	log.Info("database pool stats",
		"open", st.OpenConnections,
		"in_use", st.InUse,
		"idle", st.Idle,
		"wait_count", st.WaitCount,
		"wait_duration", st.WaitDuration,
		"max_idle_closed", st.MaxIdleClosed,
		"max_lifetime_closed", st.MaxLifetimeClosed,
	)
}
