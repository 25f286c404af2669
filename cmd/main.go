package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"detect-api/config"
	"detect-api/internal/api"
	"detect-api/internal/container"
	"detect-api/internal/domain/port"
	"detect-api/internal/infrastructure/vision"
)

func main() {
	log := initLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Загружаем модель. Ошибка не фатальна: сервер стартует без движка
	// и отвечает на /detect ошибкой о незагруженной модели.
	var engine port.Engine
	if eng, err := vision.Load(cfg.ModelPath, cfg.ClassesPath); err != nil {
		log.Errorf("Failed to load model from %s: %v", cfg.ModelPath, err)
	} else {
		log.Infof("Model loaded: %s (%d classes)", cfg.ModelPath, len(eng.Classes()))
		engine = eng
	}

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		log.Warnf("Static dir %s is not available: %v", cfg.StaticDir, err)
	}

	// Собираем сервисы приложения
	appContainer := container.New(engine)

	server := api.NewServer(appContainer, log, cfg.StaticDir)

	log.Infof("Detection API is listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server.Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initLogger настраивает логгер процесса.
func initLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
