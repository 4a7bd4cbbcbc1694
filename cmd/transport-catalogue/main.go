package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/engine"
	"github.com/theoremus-urban-solutions/transport-catalogue/logging"
)

var (
	inputFile    string
	outputFile   string
	configFile   string
	pretty       bool
	verbose      bool
	lenientStops bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "transport-catalogue",
		Short: "Offline transport-catalogue query engine",
		Long: `An offline transport-catalogue query engine. It ingests a JSON
description of a bus network (stops, road distances, routes) and answers
stat requests against it:
- Bus: route statistics (lengths, curvature, stop counts)
- Stop: buses passing through a stop
- Map: an SVG rendering of the network
- Route: the fastest passenger itinerary between two stops

Reads the request document from standard input and writes the JSON
response array to standard output.

Examples:
  transport-catalogue < requests.json
  transport-catalogue -i requests.json -o responses.json --pretty
  transport-catalogue --config transport-catalogue.yaml < requests.json`,
		RunE:          processCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input request document (default: stdin)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON response array")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&lenientStops, "lenient-stops", false, "Silently skip unknown stops in bus definitions instead of rejecting the bus")

	var generateConfigCmd = &cobra.Command{
		Use:   "generate-config [file]",
		Short: "Generate default configuration file",
		Long:  "Generate a default YAML configuration file for customizing ingestion, output and logging",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := "transport-catalogue.yaml"
			if len(args) > 0 {
				configPath = args[0]
			}
			if err := config.GenerateDefaultConfigFile(configPath); err != nil {
				return err
			}
			fmt.Printf("Generated default configuration file: %s\n", configPath)
			return nil
		},
	}
	rootCmd.AddCommand(generateConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func processCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	options := engine.DefaultOptions().FromConfig(cfg)
	if cmd.Flags().Changed("pretty") {
		options.WithPretty(pretty)
	}
	if cmd.Flags().Changed("lenient-stops") {
		options.WithStrictUnknownStops(!lenientStops)
	}
	if verbose {
		options.WithLogLevel(logging.LevelDebug)
	}

	var input io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		input = f
	}

	result, err := engine.Process(input, options)
	if err != nil {
		return err
	}

	var output []byte
	if options.Pretty {
		output, err = result.ToPrettyJSON(options.Indent)
	} else {
		output, err = result.ToJSON()
	}
	if err != nil {
		return fmt.Errorf("failed to encode responses: %w", err)
	}

	if verbose {
		summary := result.Summary()
		fmt.Fprintf(os.Stderr, "Processed %d requests (%d errors) over %d stops, %d buses in %v\n",
			summary.RequestsProcessed, summary.ErrorResponses,
			summary.StopsLoaded, summary.BusesLoaded, summary.ProcessingTime)
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, output, 0o644)
	}
	fmt.Println(string(output))
	return nil
}
