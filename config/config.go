package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault trả về biến môi trường hoặc giá trị mặc định
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
