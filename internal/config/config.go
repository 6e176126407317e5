package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Options struct {
	flagRunAddr, flagLogLevel, flagDataBaseDSN, flagDataDir,
	flagJWTSigningKey, flagAdminPassword, flagConcurrency, flagTaskExecutionInterval,
	flagNotifyWebhookURL, flagNotifyHorizonDays string
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
func (o *Options) ParseFlags() {
	// Load environment variables from the .env file
	loadEnvFile()

	// Override variable values with values from command line flags
	regStringVar(&o.flagRunAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8080"), "address and port to run server")
	regStringVar(&o.flagConcurrency, "c", getEnvOrDefault("CONCURRENCY", "5"), "Concurrency")
	regStringVar(&o.flagDataBaseDSN, "d", getEnvOrDefault("DATABASE_URI", ""), "postgres dsn, csv files are used when empty")
	regStringVar(&o.flagDataDir, "f", getEnvOrDefault("DATA_DIR", "data"), "directory with events.csv and users.csv")
	regStringVar(&o.flagTaskExecutionInterval, "i", getEnvOrDefault("TASK_EXECUTION_INTERVAL", "3600000"), "Notifier interval in milliseconds")
	regStringVar(&o.flagJWTSigningKey, "j", getEnvOrDefault("JWT_SIGNING_KEY", "test_key"), "jwt signing key")
	regStringVar(&o.flagLogLevel, "l", getEnvOrDefault("LOG_LEVEL", "debug"), "log level")
	regStringVar(&o.flagAdminPassword, "p", getEnvOrDefault("ADMIN_PASSWORD", "1234"), "password of the bootstrap admin")
	regStringVar(&o.flagNotifyWebhookURL, "w", getEnvOrDefault("NOTIFY_WEBHOOK_URL", ""), "webhook receiving preventive alerts")
	regStringVar(&o.flagNotifyHorizonDays, "n", getEnvOrDefault("NOTIFY_HORIZON_DAYS", "7"), "days ahead reported as upcoming")

	// parse the arguments passed to the server into registered variables
	flag.Parse()
}

func (o *Options) RunAddr() string {
	return o.flagRunAddr
}

func (o *Options) LogLevel() string {
	return o.flagLogLevel
}

func (o *Options) DataBaseDSN() string {
	return o.flagDataBaseDSN
}

func (o *Options) DataDir() string {
	return o.flagDataDir
}

func (o *Options) JWTSigningKey() string {
	return o.flagJWTSigningKey
}

func (o *Options) AdminPassword() string {
	return o.flagAdminPassword
}

func (o *Options) Concurrency() string {
	return o.flagConcurrency
}

func (o *Options) TaskExecutionInterval() string {
	return o.flagTaskExecutionInterval
}

func (o *Options) NotifyWebhookURL() string {
	return o.flagNotifyWebhookURL
}

func (o *Options) NotifyHorizonDays() string {
	return o.flagNotifyHorizonDays
}

func regStringVar(p *string, name string, value string, usage string) {
	if flag.Lookup(name) == nil {
		flag.StringVar(p, name, value, usage)
	}
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	for _, envPath := range []string{filepath.Join(cwd, ".env"), filepath.Join(cwd, "..", "..", ".env")} {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf(".env file loaded from %s", envPath)
			return
		}
	}

	log.Printf("No .env file found, proceeding without it")
}

// GetAsString reads an environment variable or returns a default value.
func GetAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}
