package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string // порт HTTP-сервера
	ModelPath   string // путь к весам модели
	ClassesPath string // путь к таблице классов
	StaticDir   string // каталог со статикой
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		ModelPath:   getEnv("MODEL_PATH", "best.onnx"),
		ClassesPath: getEnv("MODEL_CLASSES", "classes.txt"),
		StaticDir:   getEnv("STATIC_DIR", "./static"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
