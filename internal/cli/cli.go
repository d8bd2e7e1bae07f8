package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
	"github.com/sutego/sutego/internal/config"
	"github.com/sutego/sutego/internal/deletion"
	"github.com/sutego/sutego/internal/env"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
	"github.com/sutego/sutego/internal/ui"
	"github.com/sutego/sutego/internal/utils/debug"
)

type Option struct {
	Bin    bool   `short:"b" long:"bin" description:"List recycle bin contents"`
	Prune  bool   `long:"prune" description:"Evict recycle bin entries (\"expired\" or durations like 30d)"`
	Add    string `short:"a" long:"add" description:"Add a task with the given title" value-name:"TITLE"`
	Done   string `long:"done" description:"Mark a task as done" value-name:"ID"`
	Config string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version     Version
	option      Option
	config      config.Config
	runID       string
	store       task.Store
	bin         *recycle.Bin
	coordinator *deletion.Coordinator
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

// newLogger builds the slog handler with the run id attached to every
// record, so one invocation's lines can be isolated in the shared log file.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.DebugLevel,
		Formatter:       log.TextFormatter,
	})
	return logger.With("run_id", runID())
}

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[-b | --prune args... | tasks...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logDir := filepath.Dir(env.SUTEGO_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		err := os.MkdirAll(logDir, 0755)
		if err != nil {
			return err
		}
	}

	var w io.Writer
	if file, err := os.OpenFile(env.SUTEGO_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = file
	} else {
		w = os.Stderr
	}

	slog.SetDefault(slog.New(newLogger(w)))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	dataDir := cfg.Core.DataPath()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	store, err := task.NewLocalStore(filepath.Join(dataDir, "tasks.json"))
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}

	bin := recycle.Open(filepath.Join(dataDir, "bin.json"))

	coordinator := deletion.NewCoordinator(store, bin,
		deletion.WithRetention(cfg.Core.RetentionPeriod()),
		deletion.WithMaxBatchSize(cfg.Core.MaxBatch),
		deletion.WithHistoryCap(cfg.History.MaxEntries),
		deletion.WithConfirmTimeout(time.Duration(cfg.Confirm.CountdownSeconds)*time.Second),
	)

	// Expired records are evicted on every startup, not just while the
	// interactive sweeper is running.
	if evicted := coordinator.SweepExpired(context.Background(), time.Now()); len(evicted) > 0 {
		slog.Debug("startup sweep evicted records", "count", len(evicted))
	}

	cli := CLI{
		version:     v,
		option:      opt,
		config:      cfg,
		runID:       runID(),
		store:       store,
		bin:         bin,
		coordinator: coordinator,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.Add != "":
		return c.AddTask(c.option.Add, args)

	case c.option.Done != "":
		return c.MarkDone(c.option.Done)

	case c.option.Bin:
		return c.ListBin()

	case c.option.Prune:
		return c.Prune(args)

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(os.Stdout, true)
		case "full":
			return debug.Logs(os.Stdout, false)
		}
		return c.interactive()
	}
}

// interactive runs the full-screen task view with the background sweeper
// alive for the duration of the session.
func (c CLI) interactive() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := deletion.NewSweeper(c.coordinator, c.config.Core.SweepEvery())
	sweeper.Start(ctx)
	defer sweeper.Stop()

	return ui.Run(c.coordinator, c.store, c.bin, c.config)
}
