package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/calheat/internal/config"
	"github.com/janekbaraniewski/calheat/internal/version"
)

func main() {
	if os.Getenv("CALHEAT_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := cobra.Command{
		Use:           "calheat",
		Short:         "calheat renders calendar heatmaps from daily value series.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newRenderCommand(cfg),
		newShowCommand(cfg),
		newDemoCommand(cfg),
		newVersionCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.String())
		},
	}
}
