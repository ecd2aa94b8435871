package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"workforce" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"900" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"` // 7 дней
		SecureCookie          *bool  `default:"true" env:"AUTH_SECURE_COOKIE"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"workforce-docs" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	// локальное хранилище файлов, используется когда S3 не настроен
	FileStorage struct {
		LocalDir string `default:"./filestore" env:"FILE_STORAGE_LOCAL_DIR"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	// производственный календарь по умолчанию
	Payroll struct {
		StandardWorkingDays int `default:"22" env:"PAYROLL_STANDARD_WORKING_DAYS"`
		StandardShiftHours  int `default:"8" env:"PAYROLL_STANDARD_SHIFT_HOURS"`
	}
	Alerts struct {
		ScanIntervalMin int `default:"60" env:"ALERTS_SCAN_INTERVAL_MIN"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
