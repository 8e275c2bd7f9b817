package main

import (
	"fmt"
	"os"
	"strings"

	"hydroplot/benchmark"
	version_control "hydroplot/config"
	"hydroplot/tools/hydro_plot"
	"hydroplot/tools/ncbi_fetch"
	"hydroplot/tools/sanity_check"
	"hydroplot/tools/seq_preview"
	"hydroplot/tools/web_server"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Hydroplot - Custom Help Menu
Usage:
  hydroplot <tool> [options]

Tools:
  plot		Compute and plot a hydropathy profile
  preview	Print a formatted 60-residue sequence preview
  fetch		Resolve an NCBI accession to FASTA text
  serve		Start the interactive web plotter
  check		Run diagnostic test

Global Flags:
  -h, -help	Show this help message
  -v, -version	Show version information

Benchmarking:
  -benchmark	Must be used in association with a tool.
		Displays computational resource usage and
		pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Hydroplot - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tHydroplot:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tHydropathy Plot:\t%s\n", version_control.Hydro_Plot)
	fmt.Printf("\tSequence Preview:\t%s\n", version_control.Seq_Preview)
	fmt.Printf("\tNCBI Fetch:\t\t%s\n", version_control.NCBI_Fetch)
	fmt.Printf("\tWeb Server:\t\t%s\n", version_control.Web_Server)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "plot":
			hydro_plot.Run(cleanedArgs)
		case "preview":
			seq_preview.Run(cleanedArgs)
		case "fetch":
			ncbi_fetch.Run(cleanedArgs)
		case "serve":
			web_server.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("hydroplot %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
