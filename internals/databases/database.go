package database

import (
	"fmt"
	"net"
	"net/url"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"coachingku_backend/internals/configs"
	"coachingku_backend/internals/logger"
)

var DB *gorm.DB

type Options struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func OptionsFromEnv() Options {
	return Options{
		Driver:   configs.DBDriver,
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		Name:     configs.DBName,
		SSLMode:  configs.DBSSLMode,
	}
}

// Dialector picks the gorm driver for opts.Driver (mysql, postgres or sqlite).
func Dialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case "", "mysql":
		cfg := mysqlDriver.NewConfig()
		cfg.User = opts.User
		cfg.Passwd = opts.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(opts.Host, opts.Port)
		cfg.DBName = opts.Name
		cfg.ParseTime = true
		// rows affected counts matched rows, so re-saving the same status still reports 1
		cfg.ClientFoundRows = true
		// DATE/DATETIME values are written and read as UTC wall-clock, never shifted by the host zone
		cfg.Loc = time.UTC
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(cfg.FormatDSN()), nil
	case "postgres":
		q := url.Values{}
		q.Set("sslmode", opts.SSLMode)
		q.Set("application_name", "coachingku")
		q.Set("options", "-c statement_timeout=5000")
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(opts.User, opts.Password),
			Host:     net.JoinHostPort(opts.Host, opts.Port),
			Path:     "/" + opts.Name,
			RawQuery: q.Encode(),
		}
		return postgres.New(postgres.Config{
			DSN:                  dsn.String(),
			PreferSimpleProtocol: true,
		}), nil
	case "sqlite":
		name := opts.Name
		if name == "" {
			name = "coaching.db"
		}
		return sqlite.Open(name), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", opts.Driver)
	}
}

func Open(opts Options) (*gorm.DB, error) {
	dialector, err := Dialector(opts)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: configs.NewGormLogger(logger.L),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	return db, nil
}

func ConnectDB() {
	opts := OptionsFromEnv()
	logger.L.Infow("🔌 connecting to database", "driver", opts.Driver, "host", opts.Host, "name", opts.Name)

	db, err := Open(opts)
	if err != nil {
		logger.L.Fatalf("❌ database connection failed: %v", err)
	}
	DB = db
	logger.L.Info("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.L.Warnf("pool tune err: %v", err)
		return
	}
	if DB.Dialector.Name() == "sqlite" {
		// one writer at a time; avoids "database is locked" under concurrent requests
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			logger.L.Warnf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
