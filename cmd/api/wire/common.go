//go:build wireinject
// +build wireinject

package wire

import (
	"formflow-server/cmd/config"
	"formflow-server/internal/infra/cache"
	"formflow-server/internal/infra/httpserver"
	"formflow-server/internal/infra/sql"
	"formflow-server/internal/infra/storage"
	sharedHTTPAPI "formflow-server/internal/shared_kernel/httpapi"
	sharedPersistence "formflow-server/internal/shared_kernel/persistence"
	sharedUsecases "formflow-server/internal/shared_kernel/usecases"
	"os"

	"github.com/google/wire"
)

func InitializeTenantController() (*sharedHTTPAPI.TenantController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		sharedPersistence.NewTenantRepository,
		wire.Bind(new(sharedUsecases.TenantRepository), new(*sharedPersistence.SimpleTenantRepository)),
		sharedUsecases.NewTenantService,
		wire.Bind(new(sharedUsecases.TenantService), new(*sharedUsecases.SimpleTenantService)),
		sharedHTTPAPI.NewTenantController,
	)
	return nil, nil
}

func InitializeUserController() (*sharedHTTPAPI.UserController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideAuthenticator,
		sharedPersistence.NewUserRepository,
		wire.Bind(new(sharedUsecases.UserRepository), new(*sharedPersistence.SimpleUserRepository)),
		sharedPersistence.NewTenantRepository,
		wire.Bind(new(sharedUsecases.TenantRepository), new(*sharedPersistence.SimpleTenantRepository)),
		sharedUsecases.NewUserService,
		wire.Bind(new(sharedUsecases.UserService), new(*sharedUsecases.SimpleUserService)),
		sharedHTTPAPI.NewUserController,
	)
	return nil, nil
}

func InitializeAuthenticator() (*httpserver.Authenticator, error) {
	wire.Build(
		provideAppConfig,
		provideAuthenticator,
	)
	return nil, nil
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(config config.AppConfig) sql.ORM {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	if env == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	orm, err := sql.NewPostgreORM(config.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func provideCache(config config.AppConfig) cache.Cache {
	if config.Redis.Addr == "" {
		return cache.NewMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err != nil {
		panic(err)
	}

	return redisCache
}

func provideStore(config config.AppConfig) storage.Store {
	if config.Storage.Driver == "minio" {
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  config.Storage.MinioEndpoint,
			AccessKey: config.Storage.MinioAccessKey,
			SecretKey: config.Storage.MinioSecretKey,
			Bucket:    config.Storage.MinioBucket,
			UseSSL:    config.Storage.MinioUseSSL,
		})
		if err != nil {
			panic(err)
		}

		return store
	}

	root := config.Storage.UploadDir
	if root == "" {
		root = "uploads"
	}

	return storage.NewLocalStore(root)
}

func provideAuthenticator(config config.AppConfig) *httpserver.Authenticator {
	return httpserver.NewAuthenticator(config.Auth.JWTSecret)
}
