package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port     string `mapstructure:"port"`
		BasePath string `mapstructure:"base_path"`
		Env      string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Identity struct {
		URL        string `mapstructure:"url"`
		ServiceKey string `mapstructure:"service_key"`
	} `mapstructure:"identity"`
	Mail struct {
		ResendAPIKey string `mapstructure:"resend_api_key"`
		From         string `mapstructure:"from"`
	} `mapstructure:"mail"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.base_path", "/api/v1")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("mail.from", "Job Trail <onboarding@resend.dev>")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.base_path", "APP_BASE_PATH")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("identity.url", "IDENTITY_URL")
	viper.BindEnv("identity.service_key", "IDENTITY_SERVICE_KEY")

	// The mail key is optional on purpose: without it notifications are
	// skipped, never failed.
	viper.BindEnv("mail.resend_api_key", "RESEND_API_KEY")
	viper.BindEnv("mail.from", "MAIL_FROM")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	err = viper.Unmarshal(&cfg)
	return
}
