package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"revguide/internal/bootstrap"
	workflowcli "revguide/internal/modules/workflow/adapter/in"
	"revguide/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "revguide",
		Short:         "Research paper evaluation workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (YAML)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newEvaluateCmd(&configPath))
	root.AddCommand(newCompareCmd(&configPath))
	root.AddCommand(newInspectCmd(&configPath))
	root.AddCommand(newVenuesCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the evaluation wizard in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newEvaluateCmd(configPath *string) *cobra.Command {
	var apiKey, venue, prompt, path string
	var trace bool

	evaluate := &cobra.Command{
		Use:   "evaluate --key <key> --venue <venue> --file <path>",
		Short: "Submit a paper for evaluation and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(path) == "" {
				return fmt.Errorf("--file is required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.WorkflowCLI.Evaluate(cmd.Context(), workflowcli.EvaluateParams{
				APIKey: apiKey,
				Venue:  venue,
				Prompt: prompt,
				Path:   path,
			})
			if err != nil {
				return err
			}
			if out.Phase == "failed" {
				return fmt.Errorf("evaluation failed: %s", out.Reason)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Result)
			if trace {
				if err := printTrace(cmd, app); err != nil {
					return err
				}
			}
			return nil
		},
	}
	evaluate.Flags().StringVar(&apiKey, "key", "", "Gemini API key")
	evaluate.Flags().StringVar(&venue, "venue", "", "target venue")
	evaluate.Flags().StringVar(&prompt, "prompt", "", "optional evaluation prompt")
	evaluate.Flags().StringVar(&path, "file", "", "paper file path")
	evaluate.Flags().BoolVar(&trace, "trace", false, "print the submission activity trail")
	return evaluate
}

func newCompareCmd(configPath *string) *cobra.Command {
	var apiKey string

	compare := &cobra.Command{
		Use:   "compare <evaluation-file> <review-file> --key <key>",
		Short: "Compare a saved evaluation against a human review",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			evaluation, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read evaluation: %w", err)
			}
			review, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read review: %w", err)
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.GatewayCLI.Compare(cmd.Context(), apiKey, string(evaluation), string(review))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Comparison)
			return nil
		},
	}
	compare.Flags().StringVar(&apiKey, "key", "", "Gemini API key")
	return compare
}

func newInspectCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Check whether a file would be accepted for upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.PaperCLI.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\ntype: %s\nsize: %d\n", out.Name, out.ContentType, out.Size)
			if out.Pages > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pages: %d\n", out.Pages)
			}
			if out.Accepted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "accepted")
				return nil
			}
			return fmt.Errorf("rejected: %s", out.RejectReason)
		},
	}
}

func newVenuesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List the target venues",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			for _, venue := range app.WorkflowCLI.Venues(cmd.Context()) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), venue)
			}
			return nil
		},
	}
}

func printTrace(cmd *cobra.Command, app *bootstrap.App) error {
	activities, err := app.WorkflowCLI.History(context.Background())
	if err != nil {
		return err
	}
	for _, item := range activities {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s\n", item.At.Format(time.RFC3339), item.Kind, item.Detail)
	}
	return nil
}
