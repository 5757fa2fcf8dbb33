package cmd

import (
	"os"
	"path/filepath"

	"chunkpaste/pkg/chunk"
	"chunkpaste/pkg/logging"
	"chunkpaste/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	dir           string
	outDir        string
	maxLines      int
	prefix        string
	extensions    []string
	excludeDirs   []string
	excludeFiles  []string
	ignore        []string
	globalIgnore  string
	noClipboard   bool
	debug         bool
	openClipboard func() (chunk.Clipboard, error)
}

// NewRootCmd returns the base command. Run without arguments it chunks the
// current directory.
func NewRootCmd() *cobra.Command {
	return newRootCmd(chunk.NewSystemClipboard)
}

func newRootCmd(openClipboard func() (chunk.Clipboard, error)) *cobra.Command {
	defaults := chunk.DefaultConfig()
	opts := &rootOptions{openClipboard: openClipboard}

	cmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Pack source files into paste-sized chunks for chat-based LLMs",
		Long: `chunkpaste walks the current directory, concatenates allow-listed source files
behind a rendered directory tree and splits the result into chunks of a bounded
number of lines. A single chunk is copied to the clipboard; several chunks are
written to numbered files (chunk_1.txt, chunk_2.txt, ...).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(opts.debug, version.AppName, version.Get().Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", defaults.Root, "Directory to process")
	flags.StringVarP(&opts.outDir, "out-dir", "o", defaults.OutputDir, "Directory receiving chunk files")
	flags.IntVarP(&opts.maxLines, "max-lines", "n", defaults.MaxLines, "Maximum lines per chunk")
	flags.StringVarP(&opts.prefix, "prefix", "p", defaults.OutputPrefix, "Output chunk file prefix")
	flags.StringSliceVarP(&opts.extensions, "ext", "e", nil, "Allowed file extensions, replacing the defaults (repeatable)")
	flags.StringSliceVar(&opts.excludeDirs, "exclude-dir", nil, "Additional directory names to exclude (repeatable)")
	flags.StringSliceVar(&opts.excludeFiles, "exclude-file", nil, "Additional file names to exclude (repeatable)")
	flags.StringArrayVarP(&opts.ignore, "ignore", "i", nil, "Gitignore-style pattern to exclude (repeatable)")
	flags.StringVar(&opts.globalIgnore, "global-ignore", "", "Global ignore file (defaults to $CHUNKIGNORE_GLOBAL)")
	flags.BoolVar(&opts.noClipboard, "no-clipboard", false, "Always write chunk files, never use the clipboard")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// config merges flag values over the defaults.
func (o *rootOptions) config() chunk.Config {
	cfg := chunk.DefaultConfig()
	cfg.Root = o.dir
	cfg.OutputDir = o.outDir
	cfg.MaxLines = o.maxLines
	cfg.OutputPrefix = o.prefix
	if len(o.extensions) > 0 {
		cfg.AllowedExtensions = normalizeExtensions(o.extensions)
	}
	cfg.ExcludedDirs = append(cfg.ExcludedDirs, o.excludeDirs...)
	cfg.ExcludedFiles = append(cfg.ExcludedFiles, o.excludeFiles...)
	cfg.IgnorePatterns = o.ignore
	cfg.GlobalIgnoreFile = o.globalIgnore
	if exe, err := os.Executable(); err == nil {
		cfg.SelfName = filepath.Base(exe)
	}
	return cfg
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.Logger
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The clipboard is checked before any work is done.
	var cb chunk.Clipboard
	if !opts.noClipboard {
		var err error
		cb, err = opts.openClipboard()
		if err != nil {
			logger.Error("Clipboard check failed", zap.Error(err))
			return err
		}
	}

	_, err := chunk.Run(cfg, chunk.Options{
		Clipboard: cb,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	return err
}

// normalizeExtensions adds the leading dot users often leave out.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
