package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("formflow_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		viper.SetDefault("storage.driver", "local")
		viper.SetDefault("storage.max_signature_bytes", 5*1024*1024)
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				DSN: viper.GetString("database.dsn"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Storage: StorageConfig{
				Driver:            viper.GetString("storage.driver"),
				UploadDir:         viper.GetString("storage.upload_dir"),
				MaxSignatureBytes: viper.GetInt64("storage.max_signature_bytes"),
				MinioEndpoint:     viper.GetString("storage.minio.endpoint"),
				MinioAccessKey:    viper.GetString("storage.minio.access_key"),
				MinioSecretKey:    viper.GetString("storage.minio.secret_key"),
				MinioBucket:       viper.GetString("storage.minio.bucket"),
				MinioUseSSL:       viper.GetBool("storage.minio.use_ssl"),
			},
			Auth: AuthConfig{
				JWTSecret: viper.GetString("auth.jwt_secret"),
			},
			HTTP: HTTPConfig{
				AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Auth       AuthConfig
	HTTP       HTTPConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig carries the upload root and signature size limit explicitly so
// tests can inject a temp directory and a tiny limit without process-wide state.
type StorageConfig struct {
	Driver            string
	UploadDir         string
	MaxSignatureBytes int64
	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioBucket       string
	MinioUseSSL       bool
}

type AuthConfig struct {
	JWTSecret string
}

type HTTPConfig struct {
	AllowedOrigins []string
}
