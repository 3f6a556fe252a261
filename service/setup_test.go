// service/setup_test.go
package service_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SAHAYOGESHWARAN/guries-sub010/audit"
	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/db"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
	"github.com/SAHAYOGESHWARAN/guries-sub010/service"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
)

// testEnv wires the full service stack against an in-memory SQLite
// store. Redis stays unset so the cache degrades to a no-op.
type testEnv struct {
	db       *gorm.DB
	services *service.Services
	auditSvc audit.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.InitLogger(t.TempDir())

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	auditSvc := audit.NewService(audit.NewGormRepository(gdb))
	services, err := service.InitializeServices(
		gdb,
		auth.NewRegistry(),
		auditSvc,
		util.NewValidationUtil(),
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
	require.NoError(t, err)

	return &testEnv{db: gdb, services: services, auditSvc: auditSvc}
}
