package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	website "github.com/testingfly/website"
	"github.com/testingfly/website/logger"
	"github.com/testingfly/website/scaffold"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe()
	case "seed":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: testingfly seed <file.yaml>")
			os.Exit(1)
		}
		err = runSeed(os.Args[2])
	case "init":
		dir := "."
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		err = runInit(dir)
	case "version":
		fmt.Printf("testingfly %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := website.LoadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return website.New(cfg).Start(ctx)
}

func runSeed(path string) error {
	log := logger.NewLogger("seed")
	cfg, err := website.LoadConfig()
	if err != nil {
		return err
	}
	seed, err := website.LoadSeedFile(path)
	if err != nil {
		return err
	}
	store, err := website.NewStore(cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := website.ImportSeed(context.Background(), store, seed)
	if err != nil {
		return err
	}
	log.Info().Int("count", n).Str("file", path).Str("db", cfg.DatabasePath).Msg("imported resources")
	return nil
}

func runInit(dir string) error {
	cfg, err := website.LoadConfig()
	if err != nil {
		return err
	}
	res, err := scaffold.Write(dir, scaffold.Data{SiteName: cfg.Name, SiteURL: cfg.URL})
	for _, p := range res.Created {
		fmt.Printf("  created %s\n", p)
	}
	for _, p := range res.Skipped {
		fmt.Printf("  skipped %s (already exists)\n", p)
	}
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  set ADMIN_PASSWORD and ADMIN_SESSION_SECRET in .env")
	fmt.Println("  testingfly seed resources.yaml")
	fmt.Println("  testingfly serve")
	return nil
}

func printUsage() {
	fmt.Println(`testingfly - the Testingfly site server

Usage:
  testingfly [command] [arguments]

Commands:
  serve              Run the HTTP server (default)
  seed <file.yaml>   Import resources from a YAML seed file
  init [dir]         Write .env.example and resources.yaml starters
  version            Print the version
  help               Show this help message

Configuration is read from the environment and an optional .env file.`)
}
