package muigen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/igolaizola/muigen/pkg/gen/csharp"
	"github.com/igolaizola/muigen/pkg/gen/uss"
	"github.com/igolaizola/muigen/pkg/gen/uxml"
	"github.com/igolaizola/muigen/pkg/mui"
)

// Output directories for the generated Unity assets.
const (
	CSharpDir = "GeneratedCSharp"
	UXMLDir   = "GeneratedUXML"
	USSDir    = "GeneratedUSS"
)

// ScrapeConfig configures a scrape run for one component.
type ScrapeConfig struct {
	Component string
	Output    string
	Browser   bool
	Wait      time.Duration
	Debug     bool
	Proxy     string
	Headless  bool
	Binary    string
	Host      string
}

// Scrape fetches the API and demo documentation pages of a component and
// writes the intermediate JSON definition. An API page failure aborts the
// run, a demo page failure degrades to a definition without variations.
func Scrape(ctx context.Context, cfg *ScrapeConfig) error {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Info("running", "component", cfg.Component)
	defer log.Info("finished", "component", cfg.Component)

	if cfg.Component == "" {
		return errors.New("muigen: component name is empty")
	}

	client := mui.New(&mui.Config{
		Wait:  cfg.Wait,
		Debug: cfg.Debug,
		Proxy: cfg.Proxy,
		Host:  cfg.Host,
	})

	def, err := client.Definition(ctx, cfg.Component)
	if err != nil {
		return err
	}
	log.Info("api page scraped", "component", def.Name,
		"props", len(def.Properties), "classes", len(def.CSSClasses))

	// The demo page lives under the name the API page reports, which may
	// differ from the name the user typed.
	html, err := demoHTML(ctx, cfg, client, def.Name)
	if err != nil {
		// Keep going, the definition without variations is still usable
		// by the csharp generator.
		log.Error("couldn't get demo page, skipping variations", "error", err)
	} else {
		variations, err := mui.ParseVariations(def.Name, html)
		if err != nil {
			return err
		}
		def.Variations = variations
		log.Info("demo page scraped", "component", def.Name,
			"variations", len(variations))
	}

	output := cfg.Output
	if output == "" {
		output = "."
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("muigen: couldn't create output folder: %w", err)
	}
	path := filepath.Join(output, mui.Filename(def.Name))
	if err := def.Save(path); err != nil {
		return err
	}
	log.Info("definition saved", "path", path)
	return nil
}

func demoHTML(ctx context.Context, cfg *ScrapeConfig, client *mui.Client, component string) (string, error) {
	if !cfg.Browser {
		return client.DemoHTML(ctx, component)
	}
	browser := mui.NewBrowser(&mui.BrowserConfig{
		Wait:     cfg.Wait,
		Headless: cfg.Headless,
		Binary:   cfg.Binary,
		Proxy:    cfg.Proxy,
	})
	if err := browser.Start(ctx); err != nil {
		return "", err
	}
	defer func() { _ = browser.Stop() }()
	return browser.DemoHTML(ctx, component)
}

// GenerateConfig configures a generation run from a previously scraped
// definition.
type GenerateConfig struct {
	Component string
	Input     string
	Output    string
}

// load resolves and reads the intermediate definition. The bool is false
// when the file doesn't exist.
func load(cfg *GenerateConfig) (*mui.ComponentDefinition, string, bool, error) {
	input := cfg.Input
	if input == "" {
		input = "."
	}
	path := filepath.Join(input, mui.Filename(cfg.Component))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, path, false, nil
	}
	def, err := mui.Load(path)
	if err != nil {
		return nil, path, true, err
	}
	return def, path, true, nil
}

// CSharp generates the C# wrapper class for a scraped component.
func CSharp(ctx context.Context, cfg *GenerateConfig) error {
	log.Info("running", "component", cfg.Component)
	defer log.Info("finished", "component", cfg.Component)

	def, path, ok, err := load(cfg)
	if err != nil {
		return err
	}
	if !ok {
		log.Error("definition not found, run scrape first", "path", path)
		return nil
	}

	folder := filepath.Join(cfg.Output, CSharpDir)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("muigen: couldn't create output folder: %w", err)
	}
	content, err := csharp.Generate(def)
	if err != nil {
		return err
	}
	out := filepath.Join(folder, csharp.Filename(def))
	if err := os.WriteFile(out, []byte(content), 0644); err != nil {
		log.Error("couldn't write file", "path", out, "error", err)
		return nil
	}
	log.Info("c# class generated", "path", out)
	return nil
}

// UXML generates one UXML layout per variation of a scraped component.
func UXML(ctx context.Context, cfg *GenerateConfig) error {
	log.Info("running", "component", cfg.Component)
	defer log.Info("finished", "component", cfg.Component)

	def, path, ok, err := load(cfg)
	if err != nil {
		return err
	}
	if !ok {
		log.Error("definition not found, run scrape first", "path", path)
		return nil
	}

	folder := filepath.Join(cfg.Output, UXMLDir)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("muigen: couldn't create output folder: %w", err)
	}
	docs := uxml.Generate(def)
	for _, doc := range docs {
		out := filepath.Join(folder, doc.Filename)
		if err := os.WriteFile(out, []byte(doc.Content), 0644); err != nil {
			log.Error("couldn't write file", "path", out, "error", err)
			continue
		}
	}
	log.Info("uxml layouts generated", "count", len(docs), "folder", folder)
	return nil
}

// USS generates the stylesheet for a scraped component.
func USS(ctx context.Context, cfg *GenerateConfig) error {
	log.Info("running", "component", cfg.Component)
	defer log.Info("finished", "component", cfg.Component)

	def, path, ok, err := load(cfg)
	if err != nil {
		return err
	}
	if !ok {
		log.Error("definition not found, run scrape first", "path", path)
		return nil
	}

	folder := filepath.Join(cfg.Output, USSDir)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("muigen: couldn't create output folder: %w", err)
	}
	out := filepath.Join(folder, uss.Filename(def))
	if err := os.WriteFile(out, []byte(uss.Generate(def)), 0644); err != nil {
		log.Error("couldn't write file", "path", out, "error", err)
		return nil
	}
	log.Info("stylesheet generated", "path", out)
	return nil
}

// All runs every generator for a scraped component.
func All(ctx context.Context, cfg *GenerateConfig) error {
	if err := CSharp(ctx, cfg); err != nil {
		return err
	}
	if err := UXML(ctx, cfg); err != nil {
		return err
	}
	return USS(ctx, cfg)
}
