package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/playrunner/internal/playrunner/core"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

func TestComponentFactory_CreateServices(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Runner.KeyDir = t.TempDir()

	components, err := core.NewComponentFactory(&cfg, platform.NewPlatform()).CreateServices(context.Background())
	require.NoError(t, err)
	defer components.Close()

	require.NotNil(t, components.Controller)
	require.NotNil(t, components.Dispatcher)
	assert.NoError(t, components.Store.HealthCheck(context.Background()))

	job, err := components.Controller.Create(context.Background(), &domain.Job{
		Playbook: "site.yml",
		Project:  domain.Project{LocalPath: t.TempDir()},
	})
	require.NoError(t, err)

	stored, err := components.Store.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, stored.Status)
}

func TestComponentFactory_InvalidPromptPattern(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Runner.Prompts.SudoPassword = "sudo [password"

	_, err := core.NewComponentFactory(&cfg, platform.NewPlatform()).CreateServices(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}
