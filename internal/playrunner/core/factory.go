package core

import (
	"context"
	"fmt"

	"github.com/ehsaniara/playrunner/internal/playrunner/archive"
	"github.com/ehsaniara/playrunner/internal/playrunner/credentials"
	"github.com/ehsaniara/playrunner/internal/playrunner/dispatch"
	"github.com/ehsaniara/playrunner/internal/playrunner/events"
	"github.com/ehsaniara/playrunner/internal/playrunner/invocation"
	"github.com/ehsaniara/playrunner/internal/playrunner/session"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

const eventBufferSize = 256

// ComponentFactory handles creation and wiring of all daemon components.
type ComponentFactory struct {
	config   *config.Config
	platform platform.Platform
	logger   *logger.Logger
}

// ServiceComponents contains the wired services of a daemon.
type ServiceComponents struct {
	Store      storage.Backend
	Archive    archive.Sink
	Bus        events.Bus
	Controller *Controller
	Dispatcher *dispatch.Dispatcher
}

func NewComponentFactory(cfg *config.Config, p platform.Platform) *ComponentFactory {
	return &ComponentFactory{
		config:   cfg,
		platform: p,
		logger:   logger.WithField("component", "factory"),
	}
}

// CreateServices builds every component. The dispatcher is returned
// stopped; the caller starts it once recovery has run.
func (f *ComponentFactory) CreateServices(ctx context.Context) (*ServiceComponents, error) {
	f.logger.Debug("initializing application services")

	prompts, err := f.createPromptSet()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewBackend(ctx, f.config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s job store: %w", f.config.Storage.Backend, err)
	}

	sink, err := f.createArchive(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	bus := events.NewBus(eventBufferSize)

	runner := session.NewRunner(prompts,
		session.WithTimeout(f.config.Runner.PromptTimeout),
		session.WithKillGrace(f.config.Runner.KillGrace),
		session.WithProcessOperations(f.platform),
	)

	controller := NewController(Dependencies{
		Store:        store,
		Materializer: credentials.NewMaterializer(f.platform, f.config.Runner.KeyDir),
		Builder:      invocation.NewBuilder(f.builderSettings()),
		Runner:       runner,
		OS:           f.platform,
		Archive:      sink,
		Bus:          bus,
		Node:         f.config.Server.NodeID,
	})

	dispatcher := dispatch.New(store, controller, f.config.Dispatch.Workers, f.config.Dispatch.QueueSize,
		dispatch.WithNode(f.config.Server.NodeID))

	f.logger.Info("all application services initialized",
		"storage", f.config.Storage.Backend,
		"archive", f.config.Archive.Enabled,
		"workers", f.config.Dispatch.Workers)

	return &ServiceComponents{
		Store:      store,
		Archive:    sink,
		Bus:        bus,
		Controller: controller,
		Dispatcher: dispatcher,
	}, nil
}

func (f *ComponentFactory) createPromptSet() (*session.RegexPromptSet, error) {
	p := f.config.Runner.Prompts
	set, err := session.NewRegexPromptSet(session.Patterns{
		KeyPassphrase: p.KeyPassphrase,
		BadPassphrase: p.BadPassphrase,
		SudoPassword:  p.SudoPassword,
		SSHPassword:   p.SSHPassword,
	})
	if err != nil {
		return nil, errors.NewConfigError("runner", "prompts", err)
	}
	return set, nil
}

func (f *ComponentFactory) createArchive(ctx context.Context) (archive.Sink, error) {
	if !f.config.Archive.Enabled {
		return archive.NopSink(), nil
	}
	sink, err := archive.NewCloudWatchSink(ctx, f.config.Archive.CloudWatch, f.config.Server.NodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript archive: %w", err)
	}
	f.logger.Info("transcript archive enabled", "logGroup", sink.LogGroup())
	return sink, nil
}

func (f *ComponentFactory) builderSettings() invocation.Settings {
	r := f.config.Runner
	return invocation.Settings{
		Program:             r.Program,
		InventoryScript:     r.InventoryScript,
		CallbackPluginDir:   r.CallbackPluginDir,
		CallbackEventScript: r.CallbackEventScript,
		Transport:           r.Transport,
		AgentProgram:        r.AgentProgram,
		AddKeyProgram:       r.AddKeyProgram,
		Shell:               r.Shell,
	}
}

// Close releases the bus, the archive and the store.
func (c *ServiceComponents) Close() error {
	return errors.JoinErrors(c.Bus.Close(), c.Archive.Close(), c.Store.Close())
}
