package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/adapter"
	"github.com/goliatone/go-formstate/pkg/bindings/prompt"
	"github.com/goliatone/go-formstate/pkg/bindings/teaform"
	"github.com/goliatone/go-formstate/pkg/box"
	"github.com/goliatone/go-formstate/pkg/form"
)

func main() {
	ui := flag.String("ui", "prompt", "binding to use: prompt or tea")
	configPath := flag.String("config", "", "YAML file with typing_window and typing_scope")
	debug := flag.Bool("debug", false, "write debug logs to stderr")
	adapterName := flag.String("adapter", adapter.NamePassThrough, "props shape printed after submit: passthrough or input-events")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := form.DefaultConfig()
	if *configPath != "" {
		loaded, err := form.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	opts := append(cfg.Options(), form.WithLogger(logger))

	var notifier teaform.Notifier
	h, err := formstate.New(contactFields(), append(opts, notifier.Option())...)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	defer h.Close()

	view, err := formstate.Named(h.Form(), adapter.NewRegistry(), *adapterName)
	if err != nil {
		log.Fatalf("Invalid -adapter: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var values box.Values
	switch *ui {
	case "prompt":
		values, err = runPrompt(ctx, h, logger)
	case "tea":
		values, err = runTea(h, &notifier)
	default:
		log.Fatalf("unknown ui %q", *ui)
	}
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, prompt.ErrDeclined) {
			fmt.Fprintln(os.Stderr, "Cancelled")
			os.Exit(1)
		}
		log.Fatalf("Form failed: %v", err)
	}

	fields := make(map[string]any, len(contactOrder))
	for _, f := range contactOrder {
		fields[f.key] = view.MustRegister(f.key)
	}
	out := struct {
		Values box.Values     `yaml:"values"`
		Fields map[string]any `yaml:"fields"`
	}{Values: values, Fields: fields}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write values: %v", err)
	}
	_ = enc.Close()
}

func runPrompt(ctx context.Context, h *formstate.Handle[form.Presentation], logger *slog.Logger) (box.Values, error) {
	runner, err := prompt.NewRunner(h, promptFields(), prompt.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx)
}

func runTea(h *formstate.Handle[form.Presentation], notifier *teaform.Notifier) (box.Values, error) {
	model, err := teaform.New(h, teaFields(), teaform.WithTitle("Contact details"))
	if err != nil {
		return nil, err
	}
	p := tea.NewProgram(model)
	notifier.Attach(p)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	result, ok := final.(teaform.Model)
	if !ok || !result.Submitted() {
		return nil, prompt.ErrAborted
	}
	return result.Values(), nil
}
