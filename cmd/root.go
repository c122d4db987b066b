package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"decoreco/internal/config"
	"decoreco/internal/logging"
)

// version is set at build time via -ldflags.
var version = "1.0.0"

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "decoreco [path]",
	Short: "decoreco - re-encode video and audio files to save space",
	Long: `decoreco finds media files under a path (or takes an explicit list), re-encodes
each one with ffmpeg (or cjxl with --images) and replaces the original when the
new copy is smaller.`,
	Version:      version,
	Args:         inputArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Set) > 0 {
			cfg.Set = append(cfg.Set, args...)
		} else if len(args) == 1 {
			cfg.Path = args[0]
		}

		if err := cfg.Validate(); err != nil {
			if errors.Is(err, config.ErrNoInput) {
				return cmd.Help()
			}
			return err
		}

		log := logging.New(cfg.Verbose)
		if cfg.Reverse && !cfg.Sort {
			log.Warn("--reverse has no effect without --sort")
		}
		return run(cmd.Context(), &cfg, log)
	},
}

// inputArgs allows one path, or any number of extra files once --set is used.
func inputArgs(cmd *cobra.Command, args []string) error {
	if len(cfg.Set) > 0 {
		return nil
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&cfg.Set, "set", "S", nil, "process only these files, ignore path")
	flags.IntVarP(&cfg.MaxDepth, "depth", "D", -1, "how many levels deep to search for media files")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "encode and compare, but never replace originals")
	flags.BoolVarP(&cfg.List, "list", "l", false, "list files that would be processed and their sizes")
	flags.BoolVarP(&cfg.Sort, "sort", "s", false, "sort the files by size")
	flags.BoolVarP(&cfg.Reverse, "reverse", "r", false, "reverse the sort")
	flags.StringVarP((*string)(&cfg.VideoCodec), "video-codec", "v", string(config.VideoH264), "video codec to use")
	flags.StringVarP((*string)(&cfg.AudioCodec), "audio-codec", "a", string(config.AudioAAC), "audio codec to use")
	flags.BoolVarP(&cfg.Images, "images", "i", false, "convert images to JPEG XL instead of re-encoding video")
	flags.IntVarP(&cfg.Threads, "threads", "t", 0, "number of parallel jobs (0 = auto)")
	flags.BoolVar(&cfg.Plain, "plain", false, "use a single-line progress bar instead of the full view")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "print debug output")

	_ = rootCmd.RegisterFlagCompletionFunc("video-codec",
		cobra.FixedCompletions(config.CodecNames(config.VideoCodecs), cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("audio-codec",
		cobra.FixedCompletions(config.CodecNames(config.AudioCodecs), cobra.ShellCompDirectiveNoFileComp))
}
