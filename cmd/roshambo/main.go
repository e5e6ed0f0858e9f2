package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DaanHessen/roshambo/internal/engine"
	"github.com/DaanHessen/roshambo/internal/game"
	"github.com/DaanHessen/roshambo/internal/text"
	"github.com/DaanHessen/roshambo/internal/ui"
	"github.com/DaanHessen/roshambo/internal/util"
)

var (
	version      = "0.1.0"
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	seedFlag := flag.String("seed", os.Getenv("ROSHAMBO_SEED"), "Session seed string (optional; random if omitted)")
	rulesFlag := flag.String("rules", envOr("ROSHAMBO_RULES", "classic"), "Hand set: "+strings.Join(engine.RulesNames(), "|"))
	themeFlag := flag.String("theme", envOr("ROSHAMBO_THEME", "catppuccin"), "TUI theme: "+strings.Join(ui.ThemeNames(), "|"))
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "roshambo [--seed seedstring] [--rules classic|extended] [--theme name] [player | random [N] | ordered [N] | tui | help | version]\n")
	}
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		if errors.Cause(err) == errInvalidCommand {
			fmt.Fprintln(os.Stderr, text.InvalidCommand)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	switch cmd.mode {
	case modeHelp:
		fmt.Print(text.Usage)
		return
	case modeVersion:
		fmt.Println("roshambo", version)
		return
	}

	rules, err := engine.RulesByName(*rulesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	seedText := strings.TrimSpace(*seedFlag)
	if seedText == "" {
		generated, err := generateSeed()
		if err != nil {
			glog.Exitf("failed to generate seed: %v", err)
		}
		seedText = generated
		fmt.Printf("New session seed: %s\n", seedText)
	}

	cfg := util.Config{
		SeedText: seedText,
		Rules:    rules.Name(),
		Theme:    *themeFlag,
		Mode:     cmd.mode,
		Rounds:   cmd.rounds,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, rules, os.Stdin, os.Stdout); err != nil && !interrupted(err) {
		glog.Exitf("roshambo: %v", err)
	}
}

// interrupted reports whether err only says the session was cancelled.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// run builds a session from cfg and plays it to completion.
func run(ctx context.Context, cfg util.Config, rules *engine.Rules, in io.Reader, out io.Writer) error {
	seed, err := engine.NewSessionSeed(cfg.SeedText)
	if err != nil {
		return err
	}
	g := game.New(rules, engine.NewDecision(rules, seed.Stream("computer")))
	switch cfg.Mode {
	case modePlayer:
		return g.RunInteractive(ctx, game.NewInteractiveInput(in), out)
	case modeRandom:
		return g.RunRandom(ctx, seed.Stream("player"), cfg.Rounds, out)
	case modeOrdered:
		return g.RunOrdered(ctx, cfg.Rounds, out)
	case modeTUI:
		return ui.Run(ctx, g, cfg, version)
	}
	return errors.Errorf("unknown mode %q", cfg.Mode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
