// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calvert-games/dreadmd/internal/catalog"
	"github.com/calvert-games/dreadmd/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Index a converted vault and audit its dice links",
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build <vault>",
	Short: "Index the vault's notes, anchors, and roll triggers",
	Long: `Build scans every note in the vault for ^anchor labels and dice roll
triggers and stores them in a SQLite index under <vault>/.dreadmd/.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogBuild,
}

var catalogResolveCmd = &cobra.Command{
	Use:   "resolve <vault>",
	Short: "Report roll triggers whose target anchor doesn't exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogResolve,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <vault>",
	Short: "Export the catalog as YAML on standard output",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogExport,
}

func init() {
	catalogResolveCmd.Flags().Int("max-results", 0, "cap the number of dangling triggers reported (0 = no cap)")

	catalogCmd.AddCommand(catalogBuildCmd, catalogResolveCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Build(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("\nIndexed %d note(s), %d anchor(s), %d trigger(s).\n",
		summary.Notes, summary.Anchors, summary.Triggers)
	return nil
}

func runCatalogResolve(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := catalogConfig(cmd)
	dangling, err := store.Dangling(context.Background(), cfg.MaxResults)
	if err != nil {
		return err
	}
	if len(dangling) == 0 {
		fmt.Println("All roll triggers resolve.")
		return nil
	}
	for _, t := range dangling {
		fmt.Printf("dangling: %s -> [[%s#%s]]\n", t.Note, t.TargetNote, t.TargetAnchor)
	}
	return fmt.Errorf("%d dangling trigger(s)", len(dangling))
}

// catalogConfig resolves catalog settings: flags first, then the viper
// config file.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("catalog.max_results")
	}
	return types.CatalogConfig{MaxResults: maxResults}
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportYAML(context.Background(), os.Stdout)
}
