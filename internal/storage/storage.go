package storage

import (
	"os"
	"sync"

	"promoforge-backend/internal/config"
	"promoforge-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	gormConfig := &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	}

	if config.GetEnv().EnvMode == config.EnvModeDevelopment {
		gormConfig.Logger = gorm_logger.Default.LogMode(gorm_logger.Warn)
	}

	connection, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), gormConfig)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db = connection
}
