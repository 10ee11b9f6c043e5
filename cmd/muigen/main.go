package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/igolaizola/muigen"
)

// Build flags
var version = ""
var commit = ""
var date = ""

func main() {
	// Create signal based context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Launch command
	cmd := newCommand()
	if err := cmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *ffcli.Command {
	fs := flag.NewFlagSet("muigen", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "muigen [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newVersionCommand(),
			newScrapeCommand(),
			newGenerateCommand("csharp", "generate the C# wrapper class", muigen.CSharp),
			newGenerateCommand("uxml", "generate UXML layouts", muigen.UXML),
			newGenerateCommand("uss", "generate the USS stylesheet", muigen.USS),
			newAllCommand(),
		},
	}
}

func newVersionCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "muigen version",
		ShortHelp:  "print version",
		Exec: func(ctx context.Context, args []string) error {
			v := version
			if v == "" {
				v = "dev"
			}
			versionFields := []string{v}
			if commit != "" {
				versionFields = append(versionFields, commit)
			}
			if date != "" {
				versionFields = append(versionFields, date)
			}
			fmt.Println(strings.Join(versionFields, " "))
			return nil
		},
	}
}

func newScrapeCommand() *ffcli.Command {
	cmd := "scrape"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &muigen.ScrapeConfig{}
	fs.StringVar(&cfg.Output, "output", ".", "output folder for the JSON definition")
	fs.BoolVar(&cfg.Browser, "browser", false, "fetch the demo page with a headless browser")
	fs.DurationVar(&cfg.Wait, "wait", 1*time.Second, "wait time between requests")
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	fs.StringVar(&cfg.Proxy, "proxy", "", "proxy url (optional)")
	fs.BoolVar(&cfg.Headless, "headless", true, "run the browser in headless mode")
	fs.StringVar(&cfg.Binary, "chrome-bin", "", "chrome binary path (optional)")
	fs.StringVar(&cfg.Host, "host", "", "documentation base url (optional)")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("muigen %s [flags] <component>", cmd),
		ShortHelp:  "scrape a component's documentation into a JSON definition",
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("MUIGEN"),
		},
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%s: exactly one component name is required", cmd)
			}
			cfg.Component = args[0]
			return muigen.Scrape(ctx, cfg)
		},
	}
}

func newAllCommand() *ffcli.Command {
	cmd := "all"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &muigen.ScrapeConfig{}
	fs.StringVar(&cfg.Output, "output", ".", "output folder")
	fs.BoolVar(&cfg.Browser, "browser", false, "fetch the demo page with a headless browser")
	fs.DurationVar(&cfg.Wait, "wait", 1*time.Second, "wait time between requests")
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	fs.StringVar(&cfg.Proxy, "proxy", "", "proxy url (optional)")
	fs.BoolVar(&cfg.Headless, "headless", true, "run the browser in headless mode")
	fs.StringVar(&cfg.Binary, "chrome-bin", "", "chrome binary path (optional)")
	fs.StringVar(&cfg.Host, "host", "", "documentation base url (optional)")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("muigen %s [flags] <component>", cmd),
		ShortHelp:  "scrape and generate every output",
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("MUIGEN"),
		},
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%s: exactly one component name is required", cmd)
			}
			cfg.Component = args[0]
			if err := muigen.Scrape(ctx, cfg); err != nil {
				return err
			}
			return muigen.All(ctx, &muigen.GenerateConfig{
				Component: cfg.Component,
				Input:     cfg.Output,
				Output:    cfg.Output,
			})
		},
	}
}

func newGenerateCommand(cmd, help string, run func(context.Context, *muigen.GenerateConfig) error) *ffcli.Command {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &muigen.GenerateConfig{}
	fs.StringVar(&cfg.Input, "input", ".", "folder containing the JSON definition")
	fs.StringVar(&cfg.Output, "output", ".", "output folder for the generated assets")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("muigen %s [flags] <component>", cmd),
		ShortHelp:  help,
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("MUIGEN"),
		},
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%s: exactly one component name is required", cmd)
			}
			cfg.Component = args[0]
			return run(ctx, cfg)
		},
	}
}
