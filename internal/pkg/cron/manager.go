package cron

import (
	"Quill/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	statsSpec  string
	dbStatsJob *job.DBStatsJob
}

// NewCronManager statsSpec 为空时不注册连接池统计任务
func NewCronManager(statsSpec string, dbStatsJob *job.DBStatsJob) *Manager {
	return &Manager{
		engine:     cron.New(),
		statsSpec:  statsSpec,
		dbStatsJob: dbStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.statsSpec == "" || s.dbStatsJob == nil {
		return nil
	}
	if _, err := s.engine.AddJob(s.statsSpec, s.dbStatsJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron engine started", "jobs", s.Entries())
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
