package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"escrow-dashboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRunner(t *testing.T, retries int) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runner := NewMigrationRunner(db)
	runner.maxRetries = retries
	runner.retryInterval = 10 * time.Millisecond

	return runner, mock
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.False(t, runner.seed)
}

func TestNewMigrationRunnerFromConfig(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerFromConfig(db, &config.MigrationConfig{
		Seed:           true,
		MigrationsPath: "custom/migrations",
		MaxRetries:     3,
		RetryInterval:  time.Second,
	})

	assert.True(t, runner.seed)
	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.Equal(t, 3, runner.maxRetries)
	assert.Equal(t, time.Second, runner.retryInterval)
}

func TestWaitForDatabase_Success(t *testing.T) {
	runner, mock := fastRunner(t, 2)

	mock.ExpectPing().WillReturnError(nil)

	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	runner, mock := fastRunner(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err := runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	runner, mock := fastRunner(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	runner, mock := fastRunner(t, 5)
	runner.retryInterval = time.Minute

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	runner, _ := fastRunner(t, 1)
	runner.migrationsPath = "/nonexistent/path/to/migrations"

	err := runner.RunMigrations()

	assert.NoError(t, err)
}

func TestLoadSeeds_Disabled(t *testing.T) {
	runner, _ := fastRunner(t, 1)

	err := runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	runner, _ := fastRunner(t, 1)
	runner.seed = true
	runner.seedsPath = "/nonexistent/seeds/path"

	err := runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	runner, _ := fastRunner(t, 1)
	runner.seed = true
	runner.seedsPath = t.TempDir()

	err := runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	runner, mock := fastRunner(t, 1)
	runner.seed = true
	runner.seedsPath = t.TempDir()

	seedContent := `
INSERT INTO escrow_entries (id, ddu_number, operation_date, amount, object_name, created_at)
VALUES ('a0000000-0000-0000-0000-000000000001', 'DDU-1', '2024-01-15', 100000.00, 'ЖК Север', NOW());
`
	err := os.WriteFile(filepath.Join(runner.seedsPath, "001_escrow_entries.sql"), []byte(seedContent), 0644)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO escrow_entries").WillReturnResult(sqlmock.NewResult(0, 1))

	err = runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	runner, mock := fastRunner(t, 1)
	runner.seed = true
	runner.seedsPath = t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(runner.seedsPath, "001_bad.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(runner.seedsPath, "002_good.sql"), []byte("INSERT INTO escrow_entries VALUES ('x');"), 0644))

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO escrow_entries").WillReturnResult(sqlmock.NewResult(0, 1))

	err := runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	runner, _ := fastRunner(t, 1)
	runner.seed = true
	runner.seedsPath = t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(runner.seedsPath, "001_invalid.sql"), 0755))

	err := runner.LoadSeeds(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	runner, _ := fastRunner(t, 1)
	runner.migrationsPath = "/nonexistent/migrations"

	_, _, err := runner.GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, RunMigrationsIfEnabled(context.Background(), db, &config.MigrationConfig{AutoMigrate: false}))
	assert.NoError(t, RunMigrationsIfEnabled(context.Background(), db, nil))
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = RunMigrationsIfEnabled(context.Background(), db, &config.MigrationConfig{
		AutoMigrate:   true,
		MaxRetries:    2,
		RetryInterval: 10 * time.Millisecond,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}
