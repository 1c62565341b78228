package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/tenantadmin/internal/config"
)

func TestContainer(t *testing.T) {
	cfg := &config.Config{
		StoreProtocol:    "http",
		StoreHost:        "localhost",
		StorePort:        5984,
		SubjectsDatabase: "subjects",
		SubjectsView:     "subjects.v2.0.0",
		LogsDir:          "/tmp/logs",
		LogLevel:         "debug",
	}
	container := NewContainer(cfg)

	assert.Same(t, cfg, container.Config())

	// lazy singletons return the same instance on every access
	assert.Same(t, container.Logger(), container.Logger())
	assert.Same(t, container.StoreClient(), container.StoreClient())
	assert.NotNil(t, container.IdentityUseCase())
	assert.NotNil(t, container.LimitsUseCase())
	assert.Same(t, container.Dumper(), container.Dumper())
	assert.Same(t, container.SyslogReader(), container.SyslogReader())
}
