package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/filesystem"
	"github.com/brettbedarf/memfs/internal/util"
	"github.com/brettbedarf/memfs/seed"
	"github.com/brettbedarf/memfs/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		seedPath   string
		verbose    int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "memfs",
		Short: "Interactive in-memory filesystem",
		Long: `memfs is an in-memory tree of directories and files driven from a
command prompt. Nothing is persisted; the tree lives for the process only.

Configuration precedence: defaults < --config file < MEMFS_* environment < flags.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			override := &config.ConfigOverride{}
			if cmd.Flags().Changed("verbose") {
				override.LogLvl = &verbose
			}
			if noColor {
				override.Color = util.Pointer(false)
			}
			cfg, err := loadConfig(configPath, override)
			if err != nil {
				return err
			}
			return run(cfg, seedPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file")
	cmd.Flags().StringVarP(&seedPath, "seed", "s", "", "Path to a YAML or JSON tree definition loaded at startup")
	cmd.Flags().IntVarP(&verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled error output")
	return cmd
}

// loadConfig layers the config file, environment and flag overrides onto
// the defaults
func loadConfig(path string, flags *config.ConfigOverride) (*config.Config, error) {
	cfg, err := config.NewConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	envOverride, err := config.LoadEnvOverride()
	if err != nil {
		return nil, err
	}
	cfg.Merge(envOverride)
	cfg.Merge(flags)
	return cfg, nil
}

func run(cfg *config.Config, seedPath string, in io.Reader, out io.Writer) error {
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	fs := filesystem.NewFS(cfg)
	logger.Debug().Str("fs", fs.ID.String()).Str("root", cfg.RootName).Msg("Filesystem initialized")

	if seedPath != "" {
		nodes, err := seed.Load(seedPath)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seedPath, err)
		}
		st, err := seed.Apply(fs, nodes)
		if err != nil {
			logger.Warn().Err(err).Str("seed", seedPath).Msg("Some seed nodes were not applied")
		}
		logger.Info().
			Int("directories", st.Dirs).
			Int("files", st.Files).
			Int("skipped", st.Skipped).
			Msg("Seeded filesystem")
	}

	interactive := isTerminal(in)
	styles := shell.PlainStyles()
	if cfg.Color && isTerminal(out) {
		styles = shell.DefaultStyles()
	}

	sh := shell.New(fs, cfg, out, shell.WithInteractive(interactive), shell.WithStyles(styles))
	return sh.Run(in)
}

// isTerminal reports whether v is an *os.File attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
