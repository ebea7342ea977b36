package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "poi-finder",
		Short:        "Search points of interest along a route or around a meetup point",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "path to YAML config file")
	root.PersistentFlags().String("logger.level", "info", "log level")
	root.PersistentFlags().String("places.backend", "geoapify", "places provider: geoapify, postgres, elastic")
	root.PersistentFlags().String("ratings.backend", "yelp", "ratings provider: yelp, none")
	root.PersistentFlags().String("cache.backend", "memory", "response cache: memory, redis, none")

	root.AddCommand(newServeCmd(), newSearchCmd())
	return root
}
