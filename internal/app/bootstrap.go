package app

import (
	"fmt"

	"github.com/optomarket/optomarket-api/internal/provider"
	"github.com/optomarket/optomarket-api/internal/router"
	"github.com/optomarket/optomarket-api/internal/worker"
)

// BuildRunner assembles the services the chosen mode needs.
func BuildRunner(mode string, container *provider.Container) (*Runner, error) {
	if !ModeValid(mode) {
		return nil, fmt.Errorf("unknown run mode: %s", mode)
	}
	runner := NewRunner()
	if mode == ModeAll || mode == ModeAPI {
		engine := router.New(container)
		runner.Add(NewHTTPService(container.Cfg.Server.Host, container.Cfg.Server.Port, engine))
	}
	if mode == ModeAll || mode == ModeWorker {
		runner.Add(worker.NewService(container))
	}
	return runner, nil
}

// Run builds and runs the services for the mode, blocking until shutdown.
func Run(mode string, container *provider.Container) error {
	runner, err := BuildRunner(mode, container)
	if err != nil {
		return err
	}
	defer container.Close()
	return runner.Run()
}
