package database

import (
	"fmt"
	"log"
	"time"

	"medibridge-service/internal/app/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewMySQLDB(driverConfig *config.DriverConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		driverConfig.MySQL.User,
		driverConfig.MySQL.Password,
		driverConfig.MySQL.Host,
		driverConfig.MySQL.Port,
		driverConfig.MySQL.Database,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Duplicate-key errors surface as gorm.ErrDuplicatedKey so the
		// repositories can map them to domain conflicts.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to mysql database: %s", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get mysql connection pool: %s", err.Error())
	}
	sqlDB.SetMaxOpenConns(driverConfig.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(driverConfig.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(driverConfig.MySQL.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping mysql database: %s", err.Error())
	}

	log.Println("Successfully connected to mysql database")

	return db
}
