package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vatsimnerd/geocache"
)

var (
	configFile string
	envFile    string
	placesFile string
	lat        float64
	lon        float64
	all        bool

	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "geocache",
	Short: "Bounding box cache for reverse geocoding results",
	Long: `Loads reverse geocoding results (Nominatim JSON) into an in-memory
bounding box cache and answers which place contains a point.`,
	SilenceUsage: true,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load places and report how each box was stored",
	RunE:  runLoad,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Load places and look up the place containing a point",
	RunE:  runLookup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default ./geocache.yaml or ./data/geocache.yaml)")
	flags.StringVar(&envFile, "env", "", "Env file with GEOCACHE_* variables")
	flags.StringVarP(&placesFile, "places", "p", "places.json", "Places file, a JSON array of Nominatim results")
	flags.Float64P("max-length", "m", 0, "Maximum box side length in meters, 0 for no limit")
	flags.String("backend", string(geocache.BackendRTreeGo), "Index backend: rtreego or tidwall")
	flags.Uint8("precision", geocache.DefaultPrecision, "Coordinate precision in decimal places")
	flags.String("log-level", "info", "Log level")

	_ = v.BindPFlag("max_length", flags.Lookup("max-length"))
	_ = v.BindPFlag("backend", flags.Lookup("backend"))
	_ = v.BindPFlag("precision", flags.Lookup("precision"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	lookupCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the point")
	lookupCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude of the point")
	lookupCmd.Flags().BoolVarP(&all, "all", "a", false, "List every entry containing the point")
	_ = lookupCmd.MarkFlagRequired("lat")
	_ = lookupCmd.MarkFlagRequired("lon")

	rootCmd.AddCommand(loadCmd, lookupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup reads the config and fills a new cache with the places file
func setup() (*geocache.Cache, []loaded, error) {
	cfg, err := readConfig(v, configFile, envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.setupLogging(); err != nil {
		return nil, nil, err
	}

	c, err := cfg.newCache()
	if err != nil {
		return nil, nil, err
	}

	places, err := readPlaces(placesFile)
	if err != nil {
		return nil, nil, err
	}
	results, err := loadPlaces(c, places, cfg.MaxLength)
	if err != nil {
		return nil, nil, err
	}
	return c, results, nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	c, results, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	writeReport(out, results)
	writeStats(out, c.Stats())
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	c, _, err := setup()
	if err != nil {
		return err
	}
	pt := orb.Point{lon, lat}
	if all {
		writeMatches(cmd.OutOrStdout(), c.Matches(pt))
		return nil
	}
	lookup(cmd.OutOrStdout(), c, pt)
	return nil
}

func lookup(w io.Writer, c *geocache.Cache, pt orb.Point) {
	payload, found := c.Get(pt)
	if !found {
		fmt.Fprintln(w, "miss")
		return
	}
	fmt.Fprintln(w, payload)
}
