package render

import (
	"fmt"
	"html"
	"io"
	"os"

	"hydroplot/hydropathy"
)

// Report bundles everything the HTML report displays.
type Report struct {
	Title    string
	Header   string
	Sequence string
	Preview  string
	Config   hydropathy.Config
	Profile  hydropathy.Profile
	SVG      string
}

// WriteHTML renders the report page: a parameter table, the formatted
// sequence preview and the inline SVG chart. User-supplied text is
// escaped; the SVG comes from ProfileSVG and is embedded as-is.
func WriteHTML(w io.Writer, rep Report) error {
	chart := rep.SVG
	if chart == "" {
		chart = "<p><em>Sequence is shorter than the chosen window; no profile to plot.</em></p>"
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1, h2 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
		pre { background-color: #fff; border: 1px solid #ccc; padding: 12px; overflow-x: auto; }
	</style>
</head>
<body>
	<h1>%s</h1>
	<table>
		<tr><th>Parameter</th><th>Value</th></tr>
		<tr><td>Record</td><td>%s</td></tr>
		<tr><td>Sequence Length</td><td>%d aa</td></tr>
		<tr><td>Window Size</td><td>%d</td></tr>
		<tr><td>Edge Weight</td><td>%g</td></tr>
		<tr><td>Center Weight</td><td>%g</td></tr>
		<tr><td>Model</td><td>%s</td></tr>
		<tr><td>Scored Positions</td><td>%d</td></tr>
	</table>
	<h2>Peptide Sequence</h2>
	<pre>%s</pre>
	<h2>Hydropathy Plot</h2>
	<div>%s</div>
</body>
</html>`,
		html.EscapeString(rep.Title),
		html.EscapeString(rep.Title),
		html.EscapeString(rep.Header),
		len(rep.Sequence),
		rep.Config.WindowSize,
		rep.Config.EdgeWeight,
		hydropathy.CenterWeight,
		rep.Config.Model,
		rep.Profile.Len(),
		html.EscapeString(rep.Preview),
		chart,
	)
	return err
}

// WriteHTMLFile writes the report to filename + ".html".
func WriteHTMLFile(filename string, rep Report) error {
	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHTML(f, rep)
}
