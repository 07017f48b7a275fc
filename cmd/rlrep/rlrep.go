/*

A simple CLI app to parse a Rocket League replay passed as a CLI argument and
print it as JSON.

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/icza/gox/gox"
	"github.com/spf13/cobra"

	"github.com/hexhaus/rlrep/repparser"
)

const (
	appName    = "rlrep"
	appVersion = "v1.2.0"
	appHome    = "https://github.com/hexhaus/rlrep"
)

const (
	ExitCodeFailedToParseReplay      = 2
	ExitCodeFailedToCreateOutputFile = 3
	ExitCodeInvalidPolicy            = 4
)

// Flag variables
var (
	crcPolicy     string
	networkPolicy string
	headerOnly    bool
	outFile       string
	indent        bool
	printVersion  bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " [flags] repfile.replay",
	Short: "Parse a Rocket League replay and print it as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&crcPolicy, "crc", "onerror", "crc check policy; one of 'always', 'never', 'onerror'")
	rootCmd.Flags().StringVar(&networkPolicy, "network", "onerror", "network parse policy; one of 'always', 'never', 'onerror'")
	rootCmd.Flags().BoolVar(&headerOnly, "header-only", false, "skip the network data (same as --network never)")
	rootCmd.Flags().StringVar(&outFile, "outfile", "", "optional output file name")
	rootCmd.Flags().BoolVar(&indent, "indent", true, "use indentation when formatting output")
	rootCmd.Flags().BoolVar(&printVersion, "version", false, "print version info and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if printVersion {
		printVersionInfo()
		return nil
	}
	if len(args) < 1 {
		return cmd.Usage()
	}

	cfg := repparser.Config{}

	switch strings.ToLower(crcPolicy) {
	case "always":
		cfg.CrcCheck = repparser.CrcCheckAlways
	case "never":
		cfg.CrcCheck = repparser.CrcCheckNever
	case "onerror":
		cfg.CrcCheck = repparser.CrcCheckOnError
	default:
		fmt.Fprintf(os.Stderr, "Invalid crc policy: %v\n", crcPolicy)
		os.Exit(ExitCodeInvalidPolicy)
	}

	if headerOnly {
		networkPolicy = "never"
	}
	switch strings.ToLower(networkPolicy) {
	case "always":
		cfg.NetworkParse = repparser.NetworkParseAlways
	case "never":
		cfg.NetworkParse = repparser.NetworkParseNever
	case "onerror":
		cfg.NetworkParse = repparser.NetworkParseIgnoreOnError
	default:
		fmt.Fprintf(os.Stderr, "Invalid network policy: %v\n", networkPolicy)
		os.Exit(ExitCodeInvalidPolicy)
	}

	r, err := repparser.ParseFileConfig(args[0], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse replay: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	var destination = os.Stdout

	if outFile != "" {
		foutput, err := os.Create(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateOutputFile)
		}
		defer func() {
			if err := foutput.Close(); err != nil {
				panic(err)
			}
		}()

		destination = foutput
	}

	enc := json.NewEncoder(destination)
	enc.SetIndent("", gox.IfString(indent, "  ", ""))

	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
	}
	return nil
}

func printVersionInfo() {
	fmt.Println(appName, "version:", appVersion)
	fmt.Println("Parser version:", repparser.Version)
	fmt.Println("Platform:", runtime.GOOS, runtime.GOARCH)
	fmt.Println("Built with:", runtime.Version())
	fmt.Println("Home page:", appHome)
}
