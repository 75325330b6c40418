package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/poemfactory/internal/app"
	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/internal/ingest"
	"github.com/heartmarshall/poemfactory/internal/pronunciation/cmu"
)

func newResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the line store schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Lines.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "line store reset")
			return nil
		},
	}
}

func newIngestCmd(c *cli) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "ingest FILE...",
		Short: "Classify lines from text or .srt files and store the parseable ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if encoding == "" {
				encoding = c.cfg.Ingest.Encoding
			}
			opts := ingest.Options{Encoding: encoding}

			var raws []string
			for _, path := range args {
				lines, err := ingest.ReadFile(path, opts)
				if err != nil {
					return err
				}
				raws = append(raws, lines...)
			}

			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Lines.InsertMany(cmd.Context(), raws)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range res.Rejections {
				fmt.Fprintf(out, "rejected: %q: %s\n", r.Text, r.Message())
			}
			fmt.Fprintf(out, "%d/%d failed to parse\n", res.Rejected(), res.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding: utf-8 or latin1 (default from config)")
	return cmd
}

func newComposeCmd(c *cli) *cobra.Command {
	var (
		preset    string
		pattern   string
		syllables []string
		title     string
		author    string
		retries   int
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Assemble a poem for a preset or custom rhyme scheme",
		Example: `  poet compose --preset limerick
  poet compose --pattern ABAB --syllables A=8,9 --syllables B=6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scheme, err := buildScheme(preset, pattern, syllables)
			if err != nil {
				return err
			}
			if title == "" {
				title = c.cfg.Poem.DefaultTitle
			}
			if author == "" {
				author = c.cfg.Poem.DefaultAuthor
			}
			if retries <= 0 {
				retries = c.cfg.Poem.MaxRetries
			}

			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.Poems.NewDistinctPoem(cmd.Context(), scheme, title, author, retries)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Text())
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "named scheme: "+strings.Join(domain.PresetNames(), ", "))
	cmd.Flags().StringVar(&pattern, "pattern", "", "rhyme pattern, one label per character (e.g. AABBA)")
	cmd.Flags().StringArrayVar(&syllables, "syllables", nil, "syllable counts per label, LABEL=N[,N...]; repeatable")
	cmd.Flags().StringVar(&title, "title", "", "poem title (default from config)")
	cmd.Flags().StringVar(&author, "author", "", "poem author (default from config)")
	cmd.Flags().IntVar(&retries, "retries", 0, "attempts to find distinct end words (default from config)")
	cmd.MarkFlagsMutuallyExclusive("preset", "pattern")
	return cmd
}

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show line store and dictionary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Lines.Count(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver:     %s\n", c.cfg.Database.Driver)
			fmt.Fprintf(out, "lines:      %d\n", n)
			fmt.Fprintf(out, "dictionary: %d words\n", a.Dictionary.Len())
			return nil
		},
	}
}

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print dictionary pronunciations with syllable counts and rhyme keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := cmu.ParseFile(c.cfg.Pronunciation.CMUPath)
			if err != nil {
				return fmt.Errorf("load pronunciation dictionary: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				word := domain.NormalizeWord(arg)
				prons, ok := dict.Lookup(word)
				if !ok {
					fmt.Fprintf(out, "%s: not in dictionary\n", word)
					continue
				}
				for i, p := range prons {
					fmt.Fprintf(out, "%s(%d) %s %s syllables=%d rhyme=%s\n",
						word, i+1, p, cmu.IPA(p), p.Syllables(), p.RhymeKey())
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Overrides the root pre-run; no config is needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "poet", app.BuildVersion())
		},
	}
}
