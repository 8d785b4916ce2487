package cron

import log "log/slog"

// InitCron 注册并启动全部定时任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		log.Error("Cron jobs register failed", "err", err)
		return err
	}
	mgr.Start()
	return nil
}
