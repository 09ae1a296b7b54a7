package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"reviewtrust/internal/core/lexical"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/core/signal"
	"reviewtrust/internal/core/version"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/services/analyze/domain"
	analyzemod "reviewtrust/internal/services/analyze/module"
	"reviewtrust/internal/services/analyze/repo"
	"reviewtrust/internal/services/analyze/service"
)

// flags shared by every subcommand
type rootFlags struct {
	json    bool
	archive string
	weights string
	workers int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "reviewtrust",
		Short:         "Score how trustworthy product reviews look",
		Version:       version.Info("reviewtrust").Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&f.json, "json", false, "print results as JSON")
	root.PersistentFlags().StringVar(&f.archive, "archive", "", "keep results in this sqlite file")
	root.PersistentFlags().StringVar(&f.weights, "weights", "", "scorer tuning JSON overlaid on the defaults")
	root.PersistentFlags().IntVar(&f.workers, "workers", 4, "items scored concurrently in a batch")

	root.AddCommand(newTextCmd(f), newBatchCmd(f), newScoreCmd(f), newShowCmd(f))
	return root
}

func newTextCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "text [review text]",
		Short: "Score one review text; reads stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			txt := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				txt = string(b)
			}
			if strings.TrimSpace(txt) == "" {
				return fmt.Errorf("no review text given")
			}
			return withService(cmd.Context(), f, func(svc *service.Service) error {
				r, err := svc.AnalyzeText(cmd.Context(), txt)
				if err != nil {
					return err
				}
				return printItem(cmd.OutOrStdout(), f, r)
			})
		},
	}
}

func newBatchCmd(f *rootFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "batch -f page.json",
		Short: "Score every review of a page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b domain.Batch
			if err := readJSON(cmd, file, &b); err != nil {
				return err
			}
			return withService(cmd.Context(), f, func(svc *service.Service) error {
				res, err := svc.AnalyzeBatch(cmd.Context(), b)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if f.json {
					return writeJSON(out, res)
				}
				fmt.Fprintf(out, "batch %s: %d item(s)\n", res.BatchID, len(res.Items))
				printSignals(out, "behavioral", res.Behavioral)
				for _, it := range res.Items {
					fmt.Fprintf(out, "\n[%s]\n", it.ID)
					printResult(out, it)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "batch JSON file, - for stdin")
	return cmd
}

func newScoreCmd(f *rootFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score -f signals.json",
		Short: "Aggregate a signal bundle computed elsewhere",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b signal.Bundle
			if err := readJSON(cmd, file, &b); err != nil {
				return err
			}
			return withService(cmd.Context(), f, func(svc *service.Service) error {
				r, err := svc.Score(cmd.Context(), b)
				if err != nil {
					return err
				}
				return printItem(cmd.OutOrStdout(), f, r)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "signal bundle JSON file, - for stdin")
	return cmd
}

func newShowCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <result id>",
		Short: "Print an archived result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.archive == "" {
				return fmt.Errorf("show needs --archive")
			}
			return withService(cmd.Context(), f, func(svc *service.Service) error {
				a, err := svc.Result(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), a)
			})
		},
	}
}

// withService builds the service, with a migrated sqlite archive when --archive is set
func withService(ctx context.Context, f *rootFlags, fn func(*service.Service) error) error {
	cfg, err := analyzemod.Options{WeightsFile: f.weights}.ScorerConfig()
	if err != nil {
		return err
	}
	var opts []service.Option
	svcCfg := service.Config{Workers: f.workers}
	if f.archive != "" {
		st, err := store.Open(ctx, store.Config{
			AppName: "reviewtrust",
			Lite:    store.LiteConfig{Enabled: true, Path: f.archive},
		})
		if err != nil {
			return err
		}
		defer st.Close(context.Background())
		if err := repo.Migrate(ctx, st); err != nil {
			return err
		}
		opts = append(opts, service.WithArchive(repo.NewLiteArchive(st.Lite)))
		// archive write failures fail the command
		svcCfg.StrictSinks = true
	}
	svc := service.New(lexical.Default(), scorer.New(cfg), svcCfg, opts...)
	return fn(svc)
}

func readJSON(cmd *cobra.Command, file string, dst any) error {
	var r io.Reader = cmd.InOrStdin()
	if file != "" && file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return err
		}
		defer fh.Close()
		r = fh
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItem(w io.Writer, f *rootFlags, r domain.ItemResult) error {
	if f.json {
		return writeJSON(w, r)
	}
	printResult(w, r)
	return nil
}

func printResult(w io.Writer, r domain.ItemResult) {
	res := r.Result
	score := "n/a"
	if s := res.Score(); s != nil {
		score = fmt.Sprintf("%.2f", *s)
	}
	fmt.Fprintf(w, "%s %s  score=%s confidence=%.2f signals=%d\n",
		res.Icon(), res.Level(), score, res.Confidence(), res.SignalCount())
	fmt.Fprintf(w, "  %s\n", res.Message())
	for _, is := range res.Issues() {
		fmt.Fprintf(w, "  - [%s] %s.%s %.2f", is.Severity, is.Category, is.Signal, is.Score)
		if is.Detail != "" {
			fmt.Fprintf(w, ": %s", is.Detail)
		}
		fmt.Fprintln(w)
	}
	if r.ResultID != "" {
		fmt.Fprintf(w, "  id %s\n", r.ResultID)
	}
}

func printSignals(w io.Writer, name string, set signal.Set) {
	for _, k := range slices.Sorted(maps.Keys(set)) {
		v, ok := set[k].Value()
		if !ok {
			fmt.Fprintf(w, "  %s.%s: unknown\n", name, k)
			continue
		}
		fmt.Fprintf(w, "  %s.%s: %.2f\n", name, k, v)
	}
}
