package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print ranked places as JSON",
		Example: `  poi-finder search --from "39.9526,-75.1652" --radius 2 --category catering.cafe
  poi-finder search --from "Philadelphia" --to "New York" --mode route`,
		RunE: runSearch,
	}

	cmd.Flags().String("from", "", "origin address or lat,lng")
	cmd.Flags().String("to", "", "second address or lat,lng (meetup midpoint or route destination)")
	cmd.Flags().String("mode", string(models.SearchModeMeetup), "meetup or route")
	cmd.Flags().String("category", string(models.DefaultCategory), "place category")
	cmd.Flags().Float64("radius", 0, "search radius in miles")
	cmd.Flags().Int("limit", 0, "maximum number of results")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logger)
	log.SetOutput(os.Stderr)

	a, err := newApp(cfg, log, false)
	if err != nil {
		return err
	}
	defer a.Close()

	flags := cmd.Flags()
	fromAddress, _ := flags.GetString("from")
	toAddress, _ := flags.GetString("to")
	mode, _ := flags.GetString("mode")
	category, _ := flags.GetString("category")
	radius, _ := flags.GetFloat64("radius")
	limit, _ := flags.GetInt("limit")

	if radius == 0 {
		radius = cfg.Search.DefaultRadiusMiles
	}
	if limit == 0 {
		limit = cfg.Search.DefaultLimit
	}

	ctx := cmd.Context()
	from, err := a.geolocation.GetCoordinates(ctx, fromAddress)
	if err != nil {
		return err
	}

	req := models.SearchRequest{
		Origin:         from,
		Category:       category,
		RadiusMiles:    radius,
		Limit:          limit,
		DistanceOrigin: from,
		Mode:           models.SearchMode(mode),
	}

	var result models.RankedResult
	switch req.Mode {
	case models.SearchModeRoute:
		if toAddress == "" {
			return fmt.Errorf("%w: route mode requires --to", models.ErrInvalidRequest)
		}
		to, err := a.geolocation.GetCoordinates(ctx, toAddress)
		if err != nil {
			return err
		}
		if req.Route, err = a.geolocation.MakeRoute(ctx, from, to); err != nil {
			return err
		}
		result, err = a.search.SearchAlongRoute(ctx, req)
		if err != nil {
			return err
		}
	default:
		if toAddress != "" {
			to, err := a.geolocation.GetCoordinates(ctx, toAddress)
			if err != nil {
				return err
			}
			req.Origin = geo.Midpoint(from, to)
			req.DistanceOrigin = req.Origin
		}
		result, err = a.search.Search(ctx, req)
		if err != nil {
			return err
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
