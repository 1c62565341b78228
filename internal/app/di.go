// Package app provides dependency injection container for assembling application components.
package app

import (
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/allisson/tenantadmin/internal/config"
	"github.com/allisson/tenantadmin/internal/dump"
	identityRepository "github.com/allisson/tenantadmin/internal/identity/repository"
	identityService "github.com/allisson/tenantadmin/internal/identity/service"
	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
	limitsRepository "github.com/allisson/tenantadmin/internal/limits/repository"
	limitsUseCase "github.com/allisson/tenantadmin/internal/limits/usecase"
	"github.com/allisson/tenantadmin/internal/store"
	"github.com/allisson/tenantadmin/internal/syslog"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger      *slog.Logger
	storeClient *store.Client

	// Use Cases and helpers
	identityUC   identityUseCase.IdentityUseCase
	limitsUC     limitsUseCase.LimitsUseCase
	dumper       *dump.Dumper
	syslogReader *syslog.Reader

	// Initialization flags
	loggerInit      sync.Once
	storeClientInit sync.Once
	identityUCInit  sync.Once
	limitsUCInit    sync.Once
	dumperInit      sync.Once
	syslogInit      sync.Once
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// StoreClient returns the document store client.
func (c *Container) StoreClient() *store.Client {
	c.storeClientInit.Do(func() {
		c.storeClient = store.NewClient(store.Config{
			BaseURL:    c.config.StoreURL(),
			Username:   c.config.StoreUsername,
			Password:   c.config.StorePassword,
			HTTPClient: &http.Client{Timeout: c.config.StoreTimeout},
		})
	})
	return c.storeClient
}

// IdentityUseCase returns the identity administration use case.
func (c *Container) IdentityUseCase() identityUseCase.IdentityUseCase {
	c.identityUCInit.Do(func() {
		subjectRepo := identityRepository.NewCouchDBSubjectRepository(
			c.StoreClient(),
			c.config.SubjectsDatabase,
			c.config.SubjectsView,
		)
		c.identityUC = identityUseCase.NewIdentityUseCase(
			subjectRepo,
			identityService.NewCredentialService(),
		)
	})
	return c.identityUC
}

// LimitsUseCase returns the limits administration use case.
func (c *Container) LimitsUseCase() limitsUseCase.LimitsUseCase {
	c.limitsUCInit.Do(func() {
		limitsRepo := limitsRepository.NewCouchDBLimitsRepository(
			c.StoreClient(),
			c.config.SubjectsDatabase,
		)
		c.limitsUC = limitsUseCase.NewLimitsUseCase(limitsRepo)
	})
	return c.limitsUC
}

// Dumper returns the database dump helper.
func (c *Container) Dumper() *dump.Dumper {
	c.dumperInit.Do(func() {
		c.dumper = dump.NewDumper(c.StoreClient(), c.config)
	})
	return c.dumper
}

// SyslogReader returns the component log reader.
func (c *Container) SyslogReader() *syslog.Reader {
	c.syslogInit.Do(func() {
		c.syslogReader = syslog.NewReader(c.config.LogsDir)
	})
	return c.syslogReader
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
