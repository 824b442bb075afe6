package cli

import (
	"fmt"
	"os"

	"weblate-bridge/internal/config"
	"weblate-bridge/internal/dataset"
	"weblate-bridge/internal/header"
	"weblate-bridge/internal/overlay"
	"weblate-bridge/internal/substitute"
	"weblate-bridge/internal/textutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "weblate-bridge",
		Short: "Converts game language files between base txt and Weblate YAML",
		Long: `Bridges a line-oriented base language format and the YAML dataset used by
a Weblate translation pipeline: overlays translated values onto base files,
stamps canonical locale headers, and post-processes values for target
writing systems without corrupting string placeholders.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(patchCmd())
	rootCmd.AddCommand(postprocessCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <base.txt> <updated.yaml>",
		Short: "Merge translated values into a base file and stamp the canonical header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			group, _ := cmd.Flags().GetString("group")
			headerFile, _ := cmd.Flags().GetString("header")
			return runConvert(args[0], args[1], output, group, headerFile)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("group", "", "dataset top-level group key")
	cmd.Flags().String("header", "", "header profile YAML file (default built-in ko_Kore)")

	return cmd
}

func patchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <base.txt> <updated.yaml>",
		Short: "Merge translated values into a base file, keeping its header untouched",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			group, _ := cmd.Flags().GetString("group")
			return runPatch(args[0], args[1], output, group)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("group", "", "dataset top-level group key")

	return cmd
}

func postprocessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postprocess <input.yaml> <output.yaml>",
		Short: "Apply target-script punctuation rules to a dataset, protecting placeholders",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			rulesFile, _ := cmd.Flags().GetString("rules")
			return runPostprocess(args[0], args[1], group, rulesFile)
		},
	}

	cmd.Flags().String("group", "", "dataset top-level group key")
	cmd.Flags().String("rules", "", "replacement rules YAML file (default built-in ko_Kore table)")

	return cmd
}

// runConvert handles the `convert` command.
func runConvert(basePath, datasetPath, output, group, headerFile string) error {
	cfg := config.Load()
	group = fallback(group, cfg.GroupKey)
	headerFile = fallback(headerFile, cfg.HeaderFile)

	base, err := os.ReadFile(basePath)
	if err != nil {
		return fmt.Errorf("read base file: %w", err)
	}

	updates, err := dataset.Load(datasetPath, group)
	if err != nil {
		return err
	}

	profile := &header.KoKore
	if headerFile != "" {
		profile, err = header.LoadProfile(headerFile)
		if err != nil {
			return err
		}
	}

	result := overlay.MergeWithHeader(string(base), updates, profile)

	if err := writeText(output, result.Text); err != nil {
		return err
	}

	log.Info().
		Int("entries", updates.Len()).
		Int("replaced", result.Replaced).
		Bool("header_replaced", result.HeaderReplaced).
		Str("isocode", profile.ISOCode).
		Msg("Base file converted")

	return nil
}

// runPatch handles the `patch` command.
func runPatch(basePath, datasetPath, output, group string) error {
	cfg := config.Load()
	group = fallback(group, cfg.GroupKey)

	base, err := os.ReadFile(basePath)
	if err != nil {
		return fmt.Errorf("read base file: %w", err)
	}

	updates, err := dataset.Load(datasetPath, group)
	if err != nil {
		return err
	}

	result := overlay.Merge(string(base), updates)

	if err := writeText(output, result.Text); err != nil {
		return err
	}

	log.Info().
		Int("entries", updates.Len()).
		Int("replaced", result.Replaced).
		Msg("Base file patched")

	return nil
}

// runPostprocess handles the `postprocess` command.
func runPostprocess(inputPath, outputPath, group, rulesFile string) error {
	cfg := config.Load()
	group = fallback(group, cfg.GroupKey)
	rulesFile = fallback(rulesFile, cfg.RulesFile)

	rules := substitute.KoKoreRules
	if rulesFile != "" {
		loaded, err := substitute.LoadRules(rulesFile)
		if err != nil {
			return err
		}
		rules = loaded
	}

	table, err := dataset.Load(inputPath, group)
	if err != nil {
		return err
	}

	sub := substitute.New(rules)
	transformed := sub.ApplyTable(table)

	transformed.Each(func(key, value string) {
		log.Debug().
			Str("key", key).
			Str("value", textutil.Truncate(value, 40)).
			Msg("Value transformed")
	})

	if err := dataset.Dump(outputPath, transformed, group); err != nil {
		return err
	}

	log.Info().
		Int("entries", transformed.Len()).
		Int("rules", len(rules)).
		Str("output", outputPath).
		Msg("Dataset post-processed")

	return nil
}

// writeText writes the document to the output file, or to stdout when no
// output path is given so results can be piped.
func writeText(output, text string) error {
	if output == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
