// Command addrtree ingests line-delimited GeoJSON address data into a
// geographic containment hierarchy and reports on or exports the result.
//
// Usage:
//
//	addrtree ingest addresses.geojson
//	addrtree dot addresses.geojson -o graph.dot
//	addrtree levels addresses.geojson
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/andreiashu/addrtree"
)

var (
	planet     string
	country    string
	maxRecords int
	dotOutput  string
	dotGeohash bool
)

var rootCmd = &cobra.Command{
	Use:   "addrtree [command] (flags)",
	Short: "addrtree builds a containment hierarchy from address data",
	Long: `addrtree reads line-delimited GeoJSON address records and folds them
into a planet/country/region/city/postcode/street/number/unit tree,
merging records that share a prefix into shared nodes.`,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.geojson>",
	Short: "build the hierarchy and print an ingestion summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, src, cleanup, err := buildTree(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		stats := h.Stats()
		fmt.Println(stats.Summary())
		if n := src.Skipped(); n > 0 {
			fmt.Printf("%d input lines were unparseable and were ignored.\n", n)
		}
		fmt.Printf("Hierarchy contains %d nodes.\n", h.NodeCount())
		return nil
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot <file.geojson>",
	Short: "build the hierarchy and export it as a Graphviz digraph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, cleanup, err := buildTree(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		out := os.Stdout
		if dotOutput != "" && dotOutput != "-" {
			f, err := os.Create(dotOutput)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return addrtree.WriteDOT(out, h, addrtree.DOTOptions{ShowGeohash: dotGeohash})
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels <file.geojson>",
	Short: "build the hierarchy and print node counts per level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, cleanup, err := buildTree(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		counts := h.LevelCounts()
		tbl := tablewriter.NewWriter(os.Stdout)
		tbl.SetHeader([]string{"Level", "Nodes"})
		for _, l := range addrtree.Levels() {
			tbl.Append([]string{l.String(), strconv.Itoa(counts[l])})
		}
		tbl.Render()
		fmt.Println(h.Stats().Summary())
		return nil
	},
}

// buildTree opens the input file and runs one full ingestion pass.
// The returned cleanup closes the file and must be called even on error
// returns from the caller's later steps.
func buildTree(path string) (*addrtree.Hierarchy, *addrtree.RecordSource, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening input file: %w", err)
	}

	h, err := addrtree.New(addrtree.WithPlanet(planet), addrtree.WithCountry(country))
	if err != nil {
		f.Close()
		return nil, nil, nil, err
	}

	src := addrtree.NewRecordSource(f, addrtree.WithMaxRecords(maxRecords))
	if _, err := addrtree.IngestAll(h, src); err != nil {
		f.Close()
		return nil, nil, nil, err
	}
	return h, src, func() { f.Close() }, nil
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		ingestCmd,
		dotCmd,
		levelsCmd,
	)

	for _, cmd := range []*cobra.Command{ingestCmd, dotCmd, levelsCmd} {
		cmd.Flags().StringVar(
			&planet, "planet", addrtree.DefaultPlanet, "label of the planet root node")
		cmd.Flags().StringVar(
			&country, "country", addrtree.DefaultCountry, "label of the country node")
		cmd.Flags().IntVarP(
			&maxRecords, "max-records", "n", 0, "maximum records to ingest (0 = all)")
	}
	dotCmd.Flags().StringVarP(
		&dotOutput, "output", "o", "", "write DOT to this file instead of stdout")
	dotCmd.Flags().BoolVar(
		&dotGeohash, "geohash", false, "annotate nodes with the geohash of their centroid")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
