package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/arkode-mx/odooplan/internal/cli"
	"github.com/arkode-mx/odooplan/internal/llm"
	"github.com/arkode-mx/odooplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := []service.Option{}

	// AI augmentation only activates when configured and the answers file
	// asks for it; a missing key silently keeps plans template-only.
	llmCfg := llm.LoadConfig()
	if llmCfg.Ready() {
		var observer llm.Observer = llm.NoopObserver{}
		if os.Getenv("ODOOPLAN_AI_LOG") != "" {
			observer = llm.NewLogObserver(os.Stderr)
		}
		opts = append(opts, service.WithAIClient(llm.NewAnthropicClient(llmCfg, observer)))
	}

	if os.Getenv("ODOOPLAN_LOG") != "" {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	app := &cli.App{
		Plans: service.NewPlanService(opts...),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
