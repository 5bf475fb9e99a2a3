package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/rope-path-filter/internal/logging"
	"github.com/ironsheep/rope-path-filter/internal/pipeline"
	"github.com/ironsheep/rope-path-filter/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	args, debug := splitFlags(os.Args[1:])

	// Handle --version and --help before anything touches the filesystem
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("ropepath %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.NewConsole(debug)

	if len(args) > 0 && args[0] == "serve" {
		log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("starting MCP server")
		if err := server.New(log, Version).Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "too many arguments")
		printUsage()
		os.Exit(1)
	}

	cfg := pipeline.DefaultConfig()
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	result, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved final connected path to %s\n", result.OutputPath)
}

// splitFlags removes --debug from args wherever it appears.
func splitFlags(args []string) ([]string, bool) {
	var rest []string
	debug := false
	for _, a := range args {
		if a == "--debug" {
			debug = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, debug
}

func printUsage() {
	fmt.Println("ropepath - turn a rope photograph into a 64x64 path silhouette")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ropepath [--debug] [INPUT [OUTPUT]]")
	fmt.Println("  ropepath [--debug] serve")
	fmt.Println()
	fmt.Printf("With no arguments, reads %s and writes %s,\n", pipeline.DefaultInputPath, pipeline.DefaultOutputPath)
	fmt.Printf("keeping the intermediate highlight image in %s.\n", pipeline.DefaultHighlightPath)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --debug          Log each pipeline stage to stderr")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("serve runs an MCP server over stdin/stdout exposing the rope_segment,")
	fmt.Println("rope_extract_path and rope_pipeline tools.")
}
