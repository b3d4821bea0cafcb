package database

import (
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
)

func TestMySQLDialectorUsesUTC(t *testing.T) {
	d, err := Dialector(Options{Driver: "mysql", Host: "127.0.0.1", Port: "3306", User: "u", Password: "p", Name: "coaching"})
	if err != nil {
		t.Fatalf("Dialector: %v", err)
	}
	md, ok := d.(*mysql.Dialector)
	if !ok {
		t.Fatalf("dialector type %T", d)
	}
	cfg, err := mysqlDriver.ParseDSN(md.DSN)
	if err != nil {
		t.Fatalf("parse dsn %q: %v", md.DSN, err)
	}
	if cfg.Loc != time.UTC {
		t.Fatalf("loc = %v, want UTC", cfg.Loc)
	}
	if !cfg.ParseTime || !cfg.ClientFoundRows || cfg.DBName != "coaching" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := Dialector(Options{Driver: "oracle"}); err == nil {
		t.Fatalf("oracle accepted")
	}
}
