package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"solid-lab/contract"
	"solid-lab/messenger"
	"solid-lab/moderation"
	"solid-lab/notifier"
	"solid-lab/scenario"
	"solid-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run is the composition root: the one place where concrete variants are
// chosen and wired together. Everything below it only sees the contracts.
// Returning an error instead of exiting keeps defers running and the wiring
// testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Output sinks: console (optionally tinted), plus a recorder the
	// scenario runner slices per step.
	var console contract.Sink = sink.NewConsole(os.Stdout)
	if config.Colours {
		console = sink.NewTinted(console, color.New(color.FgCyan))
	}
	recorder := sink.NewMemory()
	out := sink.NewFanout(console, recorder)

	// 4. Concrete variants, one of each, selected here and nowhere else.
	plain, err := messenger.NewPlain(out, log)
	if err != nil {
		return err
	}
	extended, err := messenger.NewExtended(out, log)
	if err != nil {
		return err
	}
	receipt, err := messenger.NewReceipt(plain, out)
	if err != nil {
		return err
	}
	pop, err := notifier.NewPop(out)
	if err != nil {
		return err
	}
	timed, err := notifier.NewTimed(pop, out)
	if err != nil {
		return err
	}
	notifying, err := messenger.NewNotifying(plain, timed)
	if err != nil {
		return err
	}

	steps := []scenario.Step{
		{Name: "plain messenger", Run: func(ctx context.Context) error {
			return plain.SendMessage(ctx, config.MessageText)
		}},
		{Name: "extended messenger", Run: func(ctx context.Context) error {
			return extended.SendMessage(ctx, config.MessageText)
		}},
		{Name: "receipt messenger", Run: func(ctx context.Context) error {
			return receipt.SendMessage(ctx, config.MessageText)
		}},
		{Name: "pop notifier", Run: func(ctx context.Context) error {
			return pop.Notify(ctx)
		}},
		{Name: "notifying messenger", Run: func(ctx context.Context) error {
			return notifying.SendMessage(ctx, config.MessageText)
		}},
	}

	// 5. Optional moderated step, only when a dictionary is configured.
	if len(config.CensoredWords) > 0 {
		moderator, err := moderation.NewModerator(config.CensoredWords, []rune(config.CensorChar)[0], log)
		if err != nil {
			return fmt.Errorf("moderator: %w", err)
		}
		moderated, err := messenger.NewModerated(plain, moderator, log)
		if err != nil {
			return err
		}
		steps = append(steps, scenario.Step{Name: "moderated messenger", Run: func(ctx context.Context) error {
			return moderated.SendMessage(ctx, config.MessageText)
		}})
	}

	// 6. Run the demonstration
	results, err := scenario.Execute(ctx, log, recorder, steps)
	if err != nil {
		return err
	}

	if config.Summary {
		fmt.Println()
		scenario.RenderSummary(os.Stdout, results)
	}
	return nil
}
