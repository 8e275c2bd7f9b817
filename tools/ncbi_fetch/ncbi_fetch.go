package ncbi_fetch

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hydroplot/ncbi"
)

// Run resolves an NCBI protein accession and prints the FASTA record to
// stdout.
func Run(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)

	accession := fs.String("accession", "", "NCBI protein accession ID")
	baseURL := fs.String("base_url", "", "Override the NCBI base URL (testing)")
	timeoutMs := fs.Int("timeout_ms", 15000, "Request timeout in milliseconds")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *accession == "" {
		fmt.Fprintln(os.Stderr, "Error: -accession is required")
		fs.Usage()
		os.Exit(1)
	}

	client := ncbi.NewHTTPClient(*baseURL, time.Duration(*timeoutMs)*time.Millisecond)
	text, err := client.FetchSequence(context.Background(), *accession)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to fetch accession:", err)
		os.Exit(1)
	}
	fmt.Print(text)
}
