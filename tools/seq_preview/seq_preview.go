package seq_preview

import (
	"flag"
	"fmt"
	"os"

	"hydroplot/fasta"
)

// Run prints the 60-residue formatted preview of a sequence.
func Run(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input FASTA file")
	rawSeq := fs.String("seq", "", "Raw amino acid sequence (no header)")

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

	var seq string
	switch {
	case *inFile != "":
		data, err := os.ReadFile(*inFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to open file:", err)
			os.Exit(1)
		}
		rec, err := fasta.Parse(string(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid FASTA input:", err)
			os.Exit(1)
		}
		fmt.Println(">" + rec.Header)
		seq = rec.Sequence
	case *rawSeq != "":
		seq = fasta.Clean(*rawSeq)
	default:
		fmt.Fprintln(os.Stderr, "Error: -in_file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Println(fasta.Preview(seq))
}
