package config

import "github.com/spf13/viper"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Database database config struct
type Database struct {
	Driver string
	DSN    string
}

func getDatabaseConfig(v *viper.Viper) *Database {
	return &Database{
		Driver: v.GetString("database.driver"),
		DSN:    v.GetString("database.dsn"),
	}
}

// Paging paging config struct
type Paging struct {
	DefaultSize int
	MaxSize     int
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		DefaultSize: v.GetInt("paging.default_size"),
		MaxSize:     v.GetInt("paging.max_size"),
	}
}
