package job

import (
	"bytes"
	"database/sql"
	log "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStats struct{ st sql.DBStats }

func (f fakeStats) Stats() sql.DBStats { return f.st }

func TestDBStatsJob_Run(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { log.SetDefault(prev) })

	NewDBStatsJob(fakeStats{st: sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2}}).Run()

	out := buf.String()
	assert.Contains(t, out, `"msg":"database pool stats"`)
	assert.Contains(t, out, `"open":3`)
	assert.Contains(t, out, `"idle":2`)
}
