// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calvert-games/dreadmd/internal/convert"
	"github.com/calvert-games/dreadmd/internal/source"
	"github.com/calvert-games/dreadmd/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> [vault]",
	Short: "Convert an article collection into an Obsidian vault",
	Long: `Convert reads every article from the source (a directory of text files
or a ZIP archive) and writes one annotated Markdown note per article into
the vault directory, creating it if necessary. The vault argument may be
omitted when vault.dir is set in the config file. The run continues past
malformed articles and reports each one; the command exits nonzero if any
article failed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("extension", "", "file extension of source articles (default txt)")
	convertCmd.Flags().Bool("no-readme", false, "do not generate a 00 - READ ME FIRST note")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig(cmd, args)
	if err != nil {
		return err
	}

	src, err := source.Open(args[0], cfg.Source.Extension)
	if err != nil {
		return err
	}
	defer src.Close()

	opts := convert.Options{WriteReadme: cfg.Vault.WriteReadme}
	result, err := convert.Run(src, cfg.Vault.Dir, opts, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d article(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig resolves conversion settings: arguments and flags first,
// then the viper config file, then defaults.
func convertConfig(cmd *cobra.Command, args []string) (types.ConvertConfig, error) {
	extension, _ := cmd.Flags().GetString("extension")
	if extension == "" {
		extension = viper.GetString("source.extension")
	}
	if extension == "" {
		extension = "txt"
	}

	writeReadme := true
	if noReadme, _ := cmd.Flags().GetBool("no-readme"); noReadme {
		writeReadme = false
	} else if viper.IsSet("vault.write_readme") {
		writeReadme = viper.GetBool("vault.write_readme")
	}

	vaultDir := viper.GetString("vault.dir")
	if len(args) > 1 {
		vaultDir = args[1]
	}
	if vaultDir == "" {
		return types.ConvertConfig{}, fmt.Errorf("no vault directory: pass a vault argument or set vault.dir")
	}

	return types.ConvertConfig{
		Source: types.SourceConfig{Extension: extension},
		Vault:  types.VaultConfig{Dir: vaultDir, WriteReadme: writeReadme},
	}, nil
}
