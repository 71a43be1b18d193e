package main

import (
	"github.com/spf13/cobra"

	"room-planner/internal/advisor/models"
)

// ============================================================
// Subcommands
// ============================================================

func newCatalogCmd(opts *options) *cobra.Command {
	var category, zone string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog entries, optionally filtered by category and zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := opts.advisor()
			if err != nil {
				return err
			}
			items, err := adv.Catalog().Filter(models.Category(category), models.Zone(zone))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "seating, table, storage, decor, floor_decor or wall_decor")
	cmd.Flags().StringVar(&zone, "zone", "", "floor, wall, corner, center or anywhere")
	return cmd
}

func newSuggestCmd(opts *options) *cobra.Command {
	var best bool

	cmd := &cobra.Command{
		Use:   "suggest <furniture-id>",
		Short: "Suggest placements for one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := opts.advisor()
			if err != nil {
				return err
			}
			room, existing, err := opts.scene(adv)
			if err != nil {
				return err
			}
			model, err := adv.Resolve(args[0])
			if err != nil {
				return err
			}

			if best {
				return printJSON(cmd.OutOrStdout(), adv.Best(model, room, existing))
			}
			return printJSON(cmd.OutOrStdout(), adv.Suggest(model, room, existing))
		},
	}
	addRoomFlags(cmd, opts)
	cmd.Flags().BoolVar(&best, "best", false, "print only the best valid placement")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "validate <furniture-id>",
		Short: "Check a proposed position against the room and placed furniture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(at)
			if err != nil {
				return err
			}
			adv, err := opts.advisor()
			if err != nil {
				return err
			}
			room, existing, err := opts.scene(adv)
			if err != nil {
				return err
			}
			model, err := adv.Resolve(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), adv.Validate(model, pos, room, existing))
		},
	}
	addRoomFlags(cmd, opts)
	cmd.Flags().StringVar(&at, "at", "", "position x,y,z in meters (required)")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newArrangeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arrange <furniture-id>...",
		Short: "Place several catalog entries one after another",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := opts.advisor()
			if err != nil {
				return err
			}
			room, existing, err := opts.scene(adv)
			if err != nil {
				return err
			}

			placed, err := adv.Arrange(cmd.Context(), args, room, existing)
			if err != nil {
				return err
			}
			out := make([]models.PlacedRef, 0, len(placed))
			for _, p := range placed {
				out = append(out, models.PlacedRef{FurnitureID: p.Model.ID, Position: p.Position, Rotation: p.Rotation})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	addRoomFlags(cmd, opts)
	return cmd
}
