package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiroemons/go-bonfire/internal/saves/config"
)

func newRootCommand() *cobra.Command {
	flags := &flagValues{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "bonfire [save files...]",
		Short: "Read character slots from .sl2 save containers",
		Long: `bonfire reads ER0000.sl2 / DS30000.sl2 save containers and lists
the characters stored in their slots (name, level and playtime).

When no files are given, save files in --dir (or the current directory) are scanned.`,
		Args:          cobra.ArbitraryArgs,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			cfg.SavePaths = args

			a, err := ctx.newApp(cmd)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path (TOML)")
	pf.StringVarP(&flags.profile, "profile", "p", "", "Save profile key (guessed from the file name when empty)")
	pf.StringVarP(&flags.format, "format", "f", config.FormatAuto, "Output format ("+strings.Join(config.Formats(), "|")+")")
	pf.IntVarP(&flags.workers, "workers", "w", 4, "Number of save files read in parallel")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "Enable debug logging")
	pf.StringVar(&flags.dir, "dir", "", "Directory to search for save files")

	rootCmd.AddCommand(newEntriesCommand(ctx))
	rootCmd.AddCommand(newProfilesCommand(ctx))

	return rootCmd
}
