// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calvert-games/dreadmd/internal/engine"
	"github.com/calvert-games/dreadmd/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <source>",
	Short: "Report malformed articles without converting anything",
	Long: `Check runs only the document segmenter over every article in the source
and reports the ones that don't follow the expected structure: a missing
Markdown header on the first line, or no copyright/OGL license line before
the first subsection. Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("extension", "", "file extension of source articles (default txt)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	extension, _ := cmd.Flags().GetString("extension")
	if extension == "" {
		extension = viper.GetString("source.extension")
	}
	if extension == "" {
		extension = "txt"
	}

	src, err := source.Open(args[0], extension)
	if err != nil {
		return err
	}
	defer src.Close()

	names, err := src.ArticleNames()
	if err != nil {
		return err
	}

	malformed := 0
	for _, name := range names {
		article, err := src.Article(name)
		if err != nil {
			fmt.Fprintf(os.Stdout, "unreadable: %s (%v)\n", name, err)
			malformed++
			continue
		}
		switch _, err := engine.Segment(article); {
		case err == nil:
			fmt.Fprintf(os.Stdout, "ok:         %s\n", name)
		case errors.Is(err, engine.ErrNotAHeader):
			fmt.Fprintf(os.Stdout, "malformed:  %s (no Markdown header on the first line)\n", name)
			malformed++
		case errors.Is(err, engine.ErrNoLicenseLine):
			fmt.Fprintf(os.Stdout, "malformed:  %s (no copyright or OGL line)\n", name)
			malformed++
		default:
			fmt.Fprintf(os.Stdout, "malformed:  %s (%v)\n", name, err)
			malformed++
		}
	}

	if malformed > 0 {
		return fmt.Errorf("%d of %d article(s) need manual fixup", malformed, len(names))
	}
	fmt.Fprintf(os.Stdout, "\nAll %d article(s) look well-formed.\n", len(names))
	return nil
}
