package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/models"
	"room-planner/internal/advisor/placement"
)

// options holds the flags shared by every subcommand.
type options struct {
	catalogPath string
	room        string
	existing    []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "plannerctl",
		Short: "Query the furniture catalog and placement advisor",
		Long: `plannerctl runs the placement advisor locally.

Rooms are given as WIDTHxDEPTHxHEIGHT in meters, placed furniture as
id@x,y,z[,rotation]. Output is JSON.

Example:
  plannerctl suggest table-2 --room 5x4x2.5 --existing sofa-1@2.5,0,0.5`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")

	root.AddCommand(
		newCatalogCmd(opts),
		newSuggestCmd(opts),
		newValidateCmd(opts),
		newArrangeCmd(opts),
	)
	return root
}

// addRoomFlags registers --room and --existing on cmd.
func addRoomFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.room, "room", "", "room dimensions WxDxH in meters (required)")
	cmd.Flags().StringArrayVar(&opts.existing, "existing", nil, "already placed furniture id@x,y,z[,rotation] (repeatable)")
	_ = cmd.MarkFlagRequired("room")
}

func (o *options) advisor() (*placement.Advisor, error) {
	if o.catalogPath == "" {
		return placement.NewAdvisor(nil), nil
	}
	cat, err := catalog.LoadFile(o.catalogPath)
	if err != nil {
		return nil, err
	}
	return placement.NewAdvisor(cat), nil
}

// scene resolves --room and --existing against the advisor's catalog.
func (o *options) scene(adv *placement.Advisor) (models.RoomDimensions, []models.PlacedFurniture, error) {
	room, err := parseRoom(o.room)
	if err != nil {
		return models.RoomDimensions{}, nil, err
	}

	refs := make([]models.PlacedRef, 0, len(o.existing))
	for _, s := range o.existing {
		ref, err := parsePlaced(s)
		if err != nil {
			return models.RoomDimensions{}, nil, err
		}
		refs = append(refs, ref)
	}

	placed, err := adv.ResolvePlaced(refs)
	if err != nil {
		return models.RoomDimensions{}, nil, err
	}
	return room, placed, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
