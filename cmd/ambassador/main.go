package main

import (
	"fmt"

	"github.com/skillotech/ambassador-api/internal/app"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// инициализация хранилища (создание БД, миграции)
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database: ", err.Error())
	}
	if err := database.Initialize(); err != nil {
		logger.Panic("can't initialize database: ", err.Error())
	}
	defer database.Close()

	app.Run(config, storage.NewStorage(database))
}
