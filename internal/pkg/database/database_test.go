package database

import (
	"Quill/internal/api/config"
	"Quill/internal/model"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	for driver, name := range map[string]string{
		"mysql":    "mysql",
		"postgres": "postgres",
		"sqlite":   "sqlite",
		"":         "sqlite",
	} {
		d, err := Dialector(driver, "")
		require.NoError(t, err, driver)
		assert.Equal(t, name, d.Name(), driver)
	}

	_, err := Dialector("oracle", "")
	assert.Error(t, err)
}

func TestNewGormDB_SQLiteAutoMigrate(t *testing.T) {
	db, err := NewGormDB(&config.DBConfig{
		Driver:  "sqlite",
		DSN:     "file:migrate_test?mode=memory&cache=shared&_foreign_keys=on",
		MaxIdle: 1,
		MaxOpen: 1,
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"category", "tag", "post", "post_tag"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// 重复迁移应当是幂等的
	assert.NoError(t, AutoMigrate(db))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t,
		"file:quill.db?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL",
		SQLiteDSN("file:quill.db?_foreign_keys=on"))
	assert.Equal(t,
		"quill.db?_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL",
		SQLiteDSN("quill.db"))
	// 已显式指定的参数保持不变
	assert.Equal(t,
		"quill.db?_txlock=deferred&_busy_timeout=100&_journal_mode=DELETE",
		SQLiteDSN("quill.db?_txlock=deferred&_busy_timeout=100&_journal_mode=DELETE"))
}

func TestNewGormDB_SQLiteConcurrentWriters(t *testing.T) {
	db, err := NewGormDB(&config.DBConfig{
		Driver:  "sqlite",
		DSN:     "file:" + filepath.Join(t.TempDir(), "quill.db") + "?_foreign_keys=on",
		MaxIdle: 10,
		MaxOpen: 10,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, AutoMigrate(db))

	category := &model.Category{Name: "Tech"}
	require.NoError(t, db.Create(category).Error)

	// 先读后写的事务并发执行，全部成功
	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = db.Transaction(func(tx *gorm.DB) error {
				var c model.Category
				if err := tx.First(&c, category.ID).Error; err != nil {
					return err
				}
				return tx.Create(&model.Post{Title: fmt.Sprintf("p%d", i), Body: "b", CategoryID: c.ID}).Error
			})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(n), count)
}
