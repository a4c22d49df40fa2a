package main

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mikios34/kpopshop-backend/config"
	"github.com/mikios34/kpopshop-backend/entity"
)

func setupDatabase(cf *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		cf.DBHost, cf.DBUser, cf.DBPassword, cf.DBName, cf.DBPort, cf.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return nil, fmt.Errorf("ensure uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Category{},
		&entity.Color{},
		&entity.Product{},
		&entity.CartLine{},
		&entity.Order{},
		&entity.OrderLine{},
		&entity.FeeType{},
		&entity.FeeValue{},
		&entity.NewsArticle{},
		&entity.Slide{},
		&entity.Banner{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
