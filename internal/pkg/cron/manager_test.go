package cron

import (
	"Quill/internal/job"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStats struct{}

func (stubStats) Stats() sql.DBStats { return sql.DBStats{} }

func TestManager_RegisterJobs(t *testing.T) {
	mgr := NewCronManager("@every 1m", job.NewDBStatsJob(stubStats{}))
	require.NoError(t, InitCron(mgr))
	assert.Equal(t, 1, mgr.Entries())
	mgr.Stop()
}

func TestManager_DisabledWhenSpecEmpty(t *testing.T) {
	mgr := NewCronManager("", job.NewDBStatsJob(stubStats{}))
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 0, mgr.Entries())
}

func TestManager_BadSpec(t *testing.T) {
	mgr := NewCronManager("not a spec", job.NewDBStatsJob(stubStats{}))
	assert.Error(t, mgr.RegisterJobs())
}
