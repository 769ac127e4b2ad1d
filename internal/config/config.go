package config

import (
	"fmt"
	"os"

	"Social_Model/internal/pkg"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port int    `envconfig:"port" default:"8080"`
	Env  string `envconfig:"env" default:"dev"`

	DBDriver string `envconfig:"db_driver" default:"mysql"`
	// DBDSN 非空时优先使用，否则由下面的字段拼出来
	DBDSN      string `envconfig:"db_dsn"`
	DBHost     string `envconfig:"db_host" default:"127.0.0.1"`
	// DBPort 为 0 时按驱动取默认端口
	DBPort     int    `envconfig:"db_port"`
	DBUser     string `envconfig:"db_user" default:"root"`
	DBPassword string `envconfig:"db_password"`
	DBName     string `envconfig:"db_name" default:"social"`
}

func Load() (*Config, error) {
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			pkg.Warn.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	if err := envconfig.Process("social", c); err != nil {
		return nil, err
	}
	return c, nil
}

// DSN 返回当前驱动使用的连接串
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.port())
	case "sqlite":
		return c.DBName + ".db"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True",
			c.DBUser, c.DBPassword, c.DBHost, c.port(), c.DBName)
	}
}

func (c *Config) port() int {
	if c.DBPort != 0 {
		return c.DBPort
	}
	if c.DBDriver == "postgres" {
		return 5432
	}
	return 3306
}

// LogLevel 生产环境只打慢查询和错误
func (c *Config) LogLevel() logger.LogLevel {
	if c.Env == "prod" {
		return logger.Warn
	}
	return logger.Info
}
