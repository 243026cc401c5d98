// msitabc compiles declarative installer-table schema definitions into
// Go source: per entity a typed identifier, an optional identifier
// generator, a row holder and a table container, plus a tagged union
// for multi-variant groups.
//
// Schemas are JSON documents in the compiler's IR, one group per file:
//
//	msitabc -pkg installer -target ./installer schema.json
//
// A YAML config file can replace the flags:
//
//	msitabc -config msitabc.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/packfold/msitab/compiler/gen"
	"github.com/packfold/msitab/compiler/load"
)

type config struct {
	Package string   `yaml:"package"`
	Target  string   `yaml:"target"`
	Header  string   `yaml:"header"`
	Schemas []string `yaml:"schemas"`
	Watch   bool     `yaml:"watch"`
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		pkg        = flag.String("pkg", "", "package name of the generated files")
		target     = flag.String("target", "", "output directory")
		header     = flag.String("header", "", "file header comment override")
		watch      = flag.Bool("watch", false, "regenerate on schema file changes")
	)
	flag.Parse()

	cfg := config{}
	if *configPath != "" {
		buf, err := os.ReadFile(*configPath)
		if err != nil {
			fatal(err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			fatal(fmt.Errorf("config %s: %w", *configPath, err))
		}
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	if *target != "" {
		cfg.Target = *target
	}
	if *header != "" {
		cfg.Header = *header
	}
	if *watch {
		cfg.Watch = true
	}
	cfg.Schemas = append(cfg.Schemas, flag.Args()...)

	if len(cfg.Schemas) == 0 {
		fatal(fmt.Errorf("no schema files given"))
	}
	if cfg.Target == "" {
		fatal(fmt.Errorf("no target directory given"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && err != context.Canceled {
		fatal(err)
	}
}

func run(ctx context.Context, cfg config) error {
	opts := options(cfg)

	if cfg.Watch {
		if len(cfg.Schemas) != 1 {
			return fmt.Errorf("watch mode takes exactly one schema file")
		}
		path := cfg.Schemas[0]
		w, err := gen.NewWatcher(func() (*gen.Graph, error) {
			return compile(path, opts)
		}, path)
		if err != nil {
			return err
		}
		defer w.Close()
		fmt.Fprintf(os.Stderr, "watching %s\n", path)
		return w.Run(ctx)
	}

	for _, path := range cfg.Schemas {
		graph, err := compile(path, opts)
		if err != nil {
			return err
		}
		if err := gen.NewGenerator(graph).Generate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func compile(path string, opts []gen.Option) (*gen.Graph, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	group, err := load.UnmarshalGroup(buf)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	graph, err := gen.NewGraph(nil, group, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return graph, nil
}

func options(cfg config) []gen.Option {
	var opts []gen.Option
	if cfg.Package != "" {
		opts = append(opts, gen.WithPackage(cfg.Package))
	}
	if cfg.Target != "" {
		opts = append(opts, gen.WithTarget(cfg.Target))
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	return opts
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "msitabc: %v\n", err)
	os.Exit(1)
}
