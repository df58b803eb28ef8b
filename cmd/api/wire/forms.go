//go:build wireinject
// +build wireinject

package wire

import (
	"formflow-server/cmd/config"
	"formflow-server/internal/forms/httpapi"
	"formflow-server/internal/forms/persistence"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/async"
	sharedPersistence "formflow-server/internal/shared_kernel/persistence"
	sharedUsecases "formflow-server/internal/shared_kernel/usecases"
	"time"

	"github.com/google/wire"
)

func InitializeFormController() (*httpapi.FormController, error) {
	wire.Build(
		provideAppConfig,
		FormServiceSet,
		wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
		persistence.NewSubmissionRepository,
		wire.Bind(new(usecases.SubmissionRepository), new(*persistence.SimpleSubmissionRepository)),
		usecases.NewSubmissionExporter,
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeSubmissionController(broker async.InternalBroker) (*httpapi.SubmissionController, error) {
	wire.Build(
		provideAppConfig,
		FormServiceSet,
		wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
		persistence.NewSubmissionRepository,
		wire.Bind(new(usecases.SubmissionRepository), new(*persistence.SimpleSubmissionRepository)),
		provideStore,
		provideSignatureConfig,
		usecases.NewSignatureProcessor,
		usecases.NewSubmissionService,
		wire.Bind(new(usecases.SubmissionService), new(*usecases.SimpleSubmissionService)),
		httpapi.NewSubmissionController,
	)
	return nil, nil
}

func InitializeSubmissionStreamController(broker async.InternalBroker) (*httpapi.SubmissionStreamController, error) {
	wire.Build(
		httpapi.NewSubmissionStreamController,
	)
	return nil, nil
}

func InitializeFileArtifactController() (*httpapi.FileArtifactController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewFileArtifactRepository,
		wire.Bind(new(usecases.FileArtifactRepository), new(*persistence.SimpleFileArtifactRepository)),
		usecases.NewFileArtifactService,
		wire.Bind(new(usecases.FileArtifactService), new(*usecases.SimpleFileArtifactService)),
		httpapi.NewFileArtifactController,
	)
	return nil, nil
}

var FormServiceSet = wire.NewSet(
	provideDatabase,
	provideCache,
	provideFormCacheTTL,
	persistence.NewFormCache,
	wire.Bind(new(usecases.FormCache), new(*persistence.SimpleFormCache)),
	persistence.NewFormRepository,
	wire.Bind(new(usecases.FormRepository), new(*persistence.SimpleFormRepository)),
	sharedPersistence.NewTenantRepository,
	wire.Bind(new(sharedUsecases.TenantRepository), new(*sharedPersistence.SimpleTenantRepository)),
	usecases.NewFormService,
)

func provideFormCacheTTL() time.Duration {
	return 5 * time.Minute
}

func provideSignatureConfig(config config.AppConfig) usecases.SignatureConfig {
	return usecases.SignatureConfig{MaxBytes: config.Storage.MaxSignatureBytes}
}
