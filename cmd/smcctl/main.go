// cmd/smcctl/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tamzrod/smcctl/internal/config"
	"github.com/tamzrod/smcctl/internal/poller"
	"github.com/tamzrod/smcctl/internal/session"
	"github.com/tamzrod/smcctl/internal/transport"
	"github.com/tamzrod/smcctl/internal/writer"
)

const (
	exitOK     = 0
	exitConfig = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// maxHoldUs is the longest hold that still fits a time.Duration.
const maxHoldUs = int64(math.MaxInt64 / int64(time.Microsecond))

// driveArgs is the parsed left/right/hold triple.
type driveArgs struct {
	Left, Right int
	Hold        time.Duration
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("smcctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file")
	verbose := fs.Bool("v", false, "debug logging")
	watch := fs.Bool("watch", false, "poll telemetry until interrupted")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: smcctl [-config file] [-v] [-watch] [left right hold_us]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	setupLogging(stderr, *verbose)

	drive, err := parseDriveArgs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "smcctl: %v\n", err)
		fs.Usage()
		return exitUsage
	}
	if drive != nil && *watch {
		fmt.Fprintln(stderr, "smcctl: -watch cannot be combined with a drive triple")
		fs.Usage()
		return exitUsage
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		return exitConfig
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Error().Err(err).Msg("config env failed")
		return exitConfig
	}
	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		return exitConfig
	}

	open, err := transport.Opener(transport.Config{
		Driver:      cfg.Transport.Driver,
		BaudRate:    cfg.Transport.BaudRate,
		ReadTimeout: time.Duration(cfg.Transport.ReadTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Error().Err(err).Msg("transport setup failed")
		return exitConfig
	}

	if drive != nil {
		printDriveArgs(stdout, *drive)
	}

	// --------------------
	// Diagnostic listing (log-and-continue)
	// --------------------

	nodes, err := transport.ListDevices(cfg.Discovery.Dir, cfg.Discovery.Prefix)
	if err != nil {
		log.Warn().Err(err).Str("dir", cfg.Discovery.Dir).Msg("device listing failed")
	}
	printDevices(stdout, nodes)

	// --------------------
	// Session
	// --------------------

	sess := session.Open(cfg.Devices, open)
	defer sess.Close()
	printHandles(stdout, sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case drive != nil:
		res := sess.Drive(ctx, []int{drive.Left, drive.Right}, drive.Hold, session.DriveOptions{
			ExitSafeStart: cfg.ExitSafeStartOnDrive(),
			StopOnExit:    cfg.Drive.StopOnExit,
			BrakeOnExit:   cfg.Drive.BrakeOnExit,
		})
		printDrive(stdout, res)

	case *watch:
		runWatch(ctx, cfg, sess, stdout)

	default:
		res, err := sess.Query()
		if err != nil {
			log.Error().Err(err).Msg("query failed")
			break
		}
		printQuery(stdout, res)
		mirrorOnce(cfg, res.Poll)
	}

	return exitOK
}

// parseDriveArgs accepts zero arguments (query) or three integers (drive).
// An all-zero triple also selects query mode.
func parseDriveArgs(args []string) (*driveArgs, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 3:
	default:
		return nil, fmt.Errorf("expected 0 or 3 arguments, got %d", len(args))
	}

	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		v[i] = n
	}

	if v[2] < 0 {
		return nil, errors.New("hold duration must be >= 0")
	}
	if int64(v[2]) > maxHoldUs {
		return nil, fmt.Errorf("hold duration %d us exceeds %d us", v[2], maxHoldUs)
	}
	if v[0] == 0 && v[1] == 0 && v[2] == 0 {
		return nil, nil
	}

	return &driveArgs{
		Left:  v[0],
		Right: v[1],
		Hold:  time.Duration(v[2]) * time.Microsecond,
	}, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ---- watch ----

func runWatch(ctx context.Context, cfg *config.Config, sess *session.Session, stdout io.Writer) {
	for i, err := range sess.ExitSafeStart() {
		if err != nil {
			log.Warn().Err(err).Int("controller", i).Msg("exit safe start failed")
		}
	}

	p, err := poller.New(poller.Config{
		Interval: time.Duration(cfg.Watch.IntervalMs) * time.Millisecond,
		Targets:  sess.Targets(),
	})
	if err != nil {
		log.Error().Err(err).Msg("poller build failed")
		return
	}

	w, closeWriter := buildMirror(cfg)
	defer closeWriter()

	out := make(chan poller.PollResult)
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, out) }()

	for {
		select {
		case res := <-out:
			printPoll(stdout, res)
			if w != nil {
				if err := w.Write(res); err != nil {
					log.Warn().Err(err).Msg("mirror write failed")
				}
			}
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("watch stopped")
			}
			return
		}
	}
}

// ---- mirror ----

func buildMirror(cfg *config.Config) (writer.Writer, func()) {
	if cfg.Mirror == nil {
		return nil, func() {}
	}

	w, closeFn, err := writer.Build(cfg.Mirror)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", cfg.Mirror.Endpoint).Msg("mirror unavailable")
		return nil, func() {}
	}

	return w, func() {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Msg("mirror close failed")
		}
	}
}

func mirrorOnce(cfg *config.Config, res poller.PollResult) {
	w, closeWriter := buildMirror(cfg)
	defer closeWriter()
	if w == nil {
		return
	}
	if err := w.Write(res); err != nil {
		log.Warn().Err(err).Msg("mirror write failed")
	}
}
