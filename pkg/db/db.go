package db

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/config"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

var allModels = []any{
	&models.RefrigeratorType{},
	&models.CookingMethod{},
	&models.Facility{},
	&models.Refrigerator{},
	&models.Menu{},
	&models.User{},
	&models.Reading{},
	&models.Alert{},
	&models.AuditEntry{},
	&models.ChannelSettings{},
}

// Open connects and migrates a new database handle.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger()})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if err := conn.AutoMigrate(allModels...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}

		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("set sqlite journal mode: %w", err)
		}
	}

	return &DB{Conn: conn}, nil
}

// GetInstance returns the process-wide database, opened on first call.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		instance, err = Open(dialector)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
	})
	return instance
}

func (d *DB) Ping() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogger() logger.Interface {
	if common.IsDevelopment() {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Silent)
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyHACCPDbPath); !found {
		dbPath = "haccp.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

// UseIsolatedMemorySqliteDialector names the in-memory database so that each
// call gets its own store.
func UseIsolatedMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func UseMysqlDialector(dsn string) gorm.Dialector {
	return mysql.Open(dsn)
}

func DialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case config.DBTypeFile:
		return sqlite.Open(cfg.DBPath), nil
	case config.DBTypeMemory:
		return UseMemorySqliteDialector(), nil
	case config.DBTypeMysql:
		return UseMysqlDialector(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("%w: unknown db type %q", config.ErrInvalidConfig, cfg.DBType)
	}
}
