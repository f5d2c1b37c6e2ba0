package cmd

import "time"

// Config carries every runtime setting of the application. Values come from
// the environment, see cmd/app/main.go for the variable names.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// StoreBackend selects where stage collections live: "postgres",
	// "redis" or "memory".
	StoreBackend string

	JWTSecret string

	KitchenPassword  string
	DeliveryPassword string
	AdminPassword    string

	// StaleOrderThreshold is how long an order may wait in the kitchen
	// before the background scan starts warning about it.
	StaleOrderThreshold time.Duration
}
