package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port int
}

type DBConfig struct {
	DSN string
}

type ScheduleConfig struct {
	CreateTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	// 預設值，沒有配置文件或環境變數時使用
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("db.dsn", "host=localhost user=postgres password=postgres dbname=chat_schedule port=5432 sslmode=disable")
	viper.SetDefault("schedule.createtimeout", "10s")

	// 環境變數優先於配置文件
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("db.dsn", "DATABASE_URL")

	// 配置文件是可選的，缺少時只依賴環境變數和預設值
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
