package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"translate-bridge/internal/preferences"
	"translate-bridge/internal/translation_client"
	"translate-bridge/pkg/logging"
	"translate-bridge/pkg/types"
)

// MaxTextLength is the longest text the app lets a user submit.
const MaxTextLength = 2300

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	cfg, err := types.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitFailure)
	}

	logger, err := logging.New(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(exitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli{
		cfg:    cfg,
		logger: logger,
		store:  preferences.NewFileStore(cfg.Preferences.Dir),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	code := app.run(ctx, os.Args[1:])
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

type cli struct {
	cfg    *types.Config
	logger *zap.Logger
	store  preferences.Store
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *cli) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	from := fs.String("from", "", "source language code (default: first preferred language)")
	to := fs.String("to", "", "target language code (default: second preferred language)")
	baseURL := fs.String("url", a.cfg.Client.BaseURL, "translation API base URL")
	health := fs.Bool("health", false, "check the translation API health and exit")
	prefs := fs.String("prefs", "", "comma separated language codes to store as preferred languages")
	timeout := fs.Duration("timeout", 0, "abort the request after this long (0 means no limit)")
	fs.Usage = func() {
		fmt.Fprintln(a.stderr, "usage: translate [flags] text...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	client := translation_client.New(*baseURL, translation_client.WithLogger(a.logger))

	switch {
	case *prefs != "":
		return a.savePreferences(*prefs)
	case *health:
		return a.checkHealth(ctx, client)
	}

	text, err := a.readText(fs.Args())
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}

	source, target, err := a.resolveLanguages(*from, *to)
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}

	return a.translate(ctx, client, text, source, target)
}

func (a *cli) savePreferences(raw string) int {
	langs, err := preferences.ParseCodes(strings.Split(raw, ","))
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}
	if err := preferences.SaveSelected(a.store, langs); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitFailure
	}
	for _, l := range langs {
		fmt.Fprintln(a.stdout, l)
	}
	return exitOK
}

func (a *cli) checkHealth(ctx context.Context, client *translation_client.Client) int {
	ok, err := client.CheckHealth(ctx)
	if err != nil {
		fmt.Fprintf(a.stderr, "unreachable: %v\n", err)
		return exitFailure
	}
	if !ok {
		fmt.Fprintln(a.stdout, "unhealthy")
		return exitFailure
	}
	fmt.Fprintln(a.stdout, "healthy")
	return exitOK
}

// readText takes the text from the arguments, or from stdin when there are none.
func (a *cli) readText(args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(io.LimitReader(a.stdin, MaxTextLength*utf8.UTFMax+1))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("text must not be empty")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return "", fmt.Errorf("text is %d characters long, the limit is %d", n, MaxTextLength)
	}
	return text, nil
}

func (a *cli) resolveLanguages(from, to string) (string, string, error) {
	if from != "" && to != "" {
		return from, to, nil
	}

	preferred, err := preferences.LoadSelected(a.store)
	if err != nil {
		a.logger.Warn("failed to load preferred languages", zap.Error(err))
	}
	if from == "" && len(preferred) > 0 {
		from = preferred[0].Code
	}
	if to == "" {
		for _, l := range preferred {
			if l.Code != from {
				to = l.Code
				break
			}
		}
	}

	if from == "" || to == "" {
		return "", "", errors.New("select source and target languages with -from/-to or -prefs")
	}
	return from, to, nil
}

func (a *cli) translate(ctx context.Context, client *translation_client.Client, text, source, target string) int {
	start := time.Now()
	outcome, err := client.Translate(ctx, text, source, target)
	if err != nil {
		var (
			transportErr *translation_client.TransportError
			backendErr   *translation_client.BackendError
			decodeErr    *translation_client.DecodeError
		)
		switch {
		case errors.As(err, &transportErr):
			fmt.Fprintf(a.stderr, "cannot reach translation service: %v\n", transportErr.Err)
		case errors.As(err, &backendErr):
			if backendErr.Message != "" {
				fmt.Fprintf(a.stderr, "translation error: %s\n", backendErr.Message)
			} else {
				fmt.Fprintf(a.stderr, "translation error: %v\n", backendErr)
			}
		case errors.As(err, &decodeErr):
			fmt.Fprintf(a.stderr, "unexpected response from translation service: %s\n", decodeErr.Body)
		default:
			fmt.Fprintf(a.stderr, "translation failed: %v\n", err)
		}
		return exitFailure
	}

	switch o := outcome.(type) {
	case translation_client.Translated:
		fmt.Fprintln(a.stdout, o.Translated)
		a.logger.Debug("translated",
			zap.String("method", o.Method),
			zap.Duration("duration", time.Since(start)),
		)
		return exitOK
	case translation_client.SoftFailure:
		fmt.Fprintf(a.stderr, "error: %s\n", o.Message)
		return exitFailure
	default:
		fmt.Fprintf(a.stderr, "unexpected outcome %T\n", outcome)
		return exitFailure
	}
}
