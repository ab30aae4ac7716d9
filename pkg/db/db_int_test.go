package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

func skipUnlessIntegration(t *testing.T) {
	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}
}

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()
	skipUnlessIntegration(t)

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(common.EnvKeyHACCPDbPath, testPath)

	instance, err := Open(UseSqliteDialector())
	require.NoError(t, err)
	defer instance.Close()

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}

func TestWithMysql(t *testing.T) {
	common.SetTestLoggerNop()
	skipUnlessIntegration(t)

	dsn := os.Getenv(common.EnvKeyHACCPDbDSN)
	if dsn == "" {
		t.Skip("Skipping mysql integration test: HACCP_DB_DSN not set")
	}

	instance, err := Open(UseMysqlDialector(dsn))
	require.NoError(t, err)
	defer instance.Close()

	require.NoError(t, instance.Ping())
	require.True(t, instance.Conn.Migrator().HasTable(&models.Alert{}))
}
