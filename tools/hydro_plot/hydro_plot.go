package hydro_plot

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hydroplot/fasta"
	"hydroplot/hydropathy"
	"hydroplot/ncbi"
	"hydroplot/render"
)

// Run computes a hydropathy profile for one sequence and writes the
// selected outputs.
func Run(args []string) {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input FASTA file")
	rawSeq := fs.String("seq", "", "Raw amino acid sequence (no header)")
	accession := fs.String("accession", "", "NCBI protein accession ID to fetch")
	windowSize := fs.Int("window", 7, "Window size (odd, 3-21)")
	edgeWeight := fs.Float64("edge_weight", 100, "Edge weight (1-100)")
	modelName := fs.String("model", "linear", "Weight model: linear or exponential")
	outFile := fs.String("out", "hydropathy_plot", "Prefix for output files")
	svgOut := fs.Bool("svg", false, "Write the chart as an SVG file")
	htmlOut := fs.Bool("html", false, "Write an HTML report with the inline chart")
	tsvOut := fs.Bool("tsv", false, "Write the profile values as TSV")

	err := fs.Parse(args) // Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	sources := 0
	for _, set := range []bool{*inFile != "", *rawSeq != "", *accession != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -in_file, -seq or -accession is required")
		fs.Usage()
		os.Exit(1)
	}

	if !*svgOut && !*htmlOut && !*tsvOut {
		*svgOut = true // default output
	}

	model, err := hydropathy.ParseModel(*modelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cfg, err := hydropathy.NewConfig(*windowSize, *edgeWeight, model)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	rec := resolveSequence(*inFile, *rawSeq, *accession)

	prof, err := hydropathy.BuildProfile(rec.Sequence, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if prof.Empty() {
		fmt.Printf("Sequence is %d aa, shorter than the %d-residue window; nothing to plot.\n",
			len(rec.Sequence), cfg.WindowSize)
		return
	}

	var svg string
	if *svgOut || *htmlOut {
		svg, err = render.ProfileSVG(rec.Header, len(rec.Sequence), prof)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to render plot:", err)
			os.Exit(1)
		}
	}

	if *svgOut {
		if err := os.WriteFile(*outFile+".svg", []byte(svg), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write SVG:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *outFile+".svg")
	}
	if *htmlOut {
		rep := render.Report{
			Title:    "Hydropathy Index Plotter",
			Header:   rec.Header,
			Sequence: rec.Sequence,
			Preview:  fasta.Preview(rec.Sequence),
			Config:   cfg,
			Profile:  prof,
			SVG:      svg,
		}
		if err := render.WriteHTMLFile(*outFile, rep); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write HTML report:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *outFile+".html")
	}
	if *tsvOut {
		if err := render.WriteTSVFile(*outFile, prof); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write TSV:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *outFile+".tsv")
	}
}

// resolveSequence turns whichever input source was given into a clean
// sequence record, exiting on ingestion failures.
func resolveSequence(inFile, rawSeq, accession string) fasta.Record {
	switch {
	case inFile != "":
		data, err := os.ReadFile(inFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to open file:", err)
			os.Exit(1)
		}
		rec, err := fasta.Parse(string(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid FASTA input:", err)
			os.Exit(1)
		}
		return rec

	case rawSeq != "":
		seq := fasta.Clean(rawSeq)
		if seq == "" {
			fmt.Fprintln(os.Stderr, "Error: -seq is empty after stripping whitespace")
			os.Exit(1)
		}
		return fasta.Record{Header: "raw input", Sequence: seq}

	default:
		client := ncbi.NewHTTPClient("", ncbi.DefaultTimeout)
		text, err := client.FetchSequence(context.Background(), accession)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to fetch accession:", err)
			os.Exit(1)
		}
		rec, err := fasta.Parse(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "NCBI returned an unexpected response:", err)
			os.Exit(1)
		}
		return rec
	}
}
