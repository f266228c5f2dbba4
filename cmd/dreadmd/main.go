// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dreadmd CLI, which converts
// collections of tabletop-RPG text articles into an Obsidian vault of
// Markdown notes with rollable tables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dreadmd CLI.
var rootCmd = &cobra.Command{
	Use:   "dreadmd",
	Short: "Convert tabletop-RPG text articles into Obsidian notes",
	Long: `dreadmd reads a collection of text articles — a directory of .txt files
or a ZIP archive — and writes one Markdown note per article into an
Obsidian vault. Numbered lists become rollable tables, each preceded by a
dice-roller trigger that links back to an anchor placed after the table.

Use convert for the full pipeline, check to find malformed articles
without writing anything, and catalog to index and audit the dice links
of a converted vault.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dreadmd.yaml or ~/.config/dreadmd/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dreadmd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dreadmd"))
		}
	}

	viper.SetEnvPrefix("DREADMD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
