package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/gaze/archive"
	"github.com/lixenwraith/gaze/config"
	"github.com/lixenwraith/gaze/content"
)

// options are the persistent flags shared by every command
type options struct {
	configPath  string
	seedsPath   string
	archivePath string
	debug       bool

	cfg    *config.Config
	logger *zap.Logger
	logOut *os.File
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gaze",
		Short: "A constellation of cultural artifacts in the terminal",
		Long: `gaze renders a field of drifting, colliding content nodes.

Drag nodes with the mouse to rearrange them, click one to open its thread,
press n to publish a new node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runTUI(ctx, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.seedsPath, "seeds", "", "YAML file replacing the built-in seed content")
	flags.StringVar(&opts.archivePath, "archive", "", "SQLite archive path, overrides the config")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to "+logDir+"/"+logFileName)

	root.AddCommand(
		newSimulateCmd(opts),
		newSeedsCmd(opts),
		newPublishCmd(opts),
		newArchiveCmd(opts),
	)
	return root
}

func (o *options) init() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.archivePath != "" {
		cfg.Archive.Path = o.archivePath
	}
	o.cfg = cfg
	o.logger, o.logOut = setupLogging(o.debug)
	return nil
}

func (o *options) close() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
	if o.logOut != nil {
		o.logOut.Close()
	}
}

// rng returns the configured deterministic source, or a random one
func (o *options) rng() *rand.Rand {
	if seed := o.cfg.Physics.Seed; seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// openArchive opens the configured archive, nil when none is configured
func (o *options) openArchive() (*archive.Store, error) {
	if o.cfg.Archive.Path == "" {
		return nil, nil
	}
	return archive.Open(o.cfg.Archive.Path)
}

// loadItems returns the seed content followed by items published in earlier sessions
func (o *options) loadItems(ctx context.Context, store *archive.Store) ([]content.Item, error) {
	var (
		items []content.Item
		err   error
	)
	if o.seedsPath != "" {
		items, err = content.LoadSeeds(o.seedsPath)
	} else {
		items, err = content.DefaultSeeds()
	}
	if err != nil {
		return nil, err
	}

	if store == nil {
		return items, nil
	}
	published, err := store.PublishedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load published items: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it.ID] = struct{}{}
	}
	for _, it := range published {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		it = it.Normalize()
		if err := content.Validate(it); err != nil {
			o.logger.Warn("skipping invalid archived item", zap.String("id", it.ID), zap.Error(err))
			continue
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}

// errNoArchive is returned by commands that need an archive path
var errNoArchive = errors.New("no archive configured, set --archive, GAZE_ARCHIVE_PATH or [archive] path")
