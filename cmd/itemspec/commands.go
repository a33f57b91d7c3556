package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sparecarry/itemspec/internal/domain"
	"github.com/sparecarry/itemspec/internal/observability"
	"github.com/sparecarry/itemspec/internal/usecase"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "itemspec",
		Short: "Estimate weight and dimensions of items posted for delivery",
		Long: `itemspec infers an item's weight, dimensions and category from its
listing text, checks user-entered weights against dimensions, and turns a
"how heavy does it feel" answer into a weight.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolution details to stderr")

	newService := func(cmd *cobra.Command) *usecase.ItemSpecService {
		level := "disabled"
		if verbose {
			level = "debug"
		}
		logger := observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      "console",
			Output:      cmd.ErrOrStderr(),
			ServiceName: "itemspec-cli",
		})
		return usecase.NewItemSpecService(usecase.NewInferenceEngine(), nil, logger, usecase.ItemSpecServiceConfig{})
	}

	root.AddCommand(newInferCmd(newService), newValidateCmd(newService), newFeelCmd(newService))
	return root
}

func newInferCmd(newService func(*cobra.Command) *usecase.ItemSpecService) *cobra.Command {
	var req domain.EstimateRequest

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer weight, dimensions and category from item text",
		Example: `  itemspec infer --title "Marine Battery 200Ah"
  itemspec infer --title "Homemade jam" --category food`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := newService(cmd).Estimate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"estimate": spec})
		},
	}

	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "item title")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "item description")
	cmd.Flags().StringVarP(&req.Category, "category", "c", "", "category hint used when nothing else matches")
	return cmd
}

func newValidateCmd(newService func(*cobra.Command) *usecase.ItemSpecService) *cobra.Command {
	var weight float64
	var dims domain.Dimensions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a weight is plausible for the given dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), newService(cmd).Validate(weight, dims))
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	addDimensionFlags(cmd, &dims)
	return cmd
}

func newFeelCmd(newService func(*cobra.Command) *usecase.ItemSpecService) *cobra.Command {
	var feel string
	var dims domain.Dimensions

	cmd := &cobra.Command{
		Use:     "feel",
		Short:   "Estimate weight from dimensions and how heavy the item feels",
		Example: `  itemspec feel --length 10 --width 10 --height 10 --feel heavy`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := domain.ParseFeelBucket(feel)
			if err != nil {
				return fmt.Errorf("%w (one of very_light, light, medium, heavy, very_heavy)", err)
			}
			weight := newService(cmd).EstimateFromFeel(dims, bucket)
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"weight": weight, "feel": bucket})
		},
	}

	cmd.Flags().StringVar(&feel, "feel", "", "very_light, light, medium, heavy or very_heavy")
	_ = cmd.MarkFlagRequired("feel")
	addDimensionFlags(cmd, &dims)
	return cmd
}

func addDimensionFlags(cmd *cobra.Command, dims *domain.Dimensions) {
	cmd.Flags().Float64Var(&dims.Length, "length", 0, "length in cm")
	cmd.Flags().Float64Var(&dims.Width, "width", 0, "width in cm")
	cmd.Flags().Float64Var(&dims.Height, "height", 0, "height in cm")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
