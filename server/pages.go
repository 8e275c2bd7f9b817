package server

// indexHTML takes the default window size and edge weight as Printf
// arguments.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Hydropathy Index Plotter</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; text-align: center; }
		form { max-width: 640px; margin: 0 auto; background-color: #fff; border: 1px solid #ccc; padding: 20px; }
		label { display: block; margin-top: 12px; font-weight: bold; }
		textarea, select, input { width: 100%%; margin-top: 4px; box-sizing: border-box; }
		button { margin-top: 16px; padding: 8px 24px; }
	</style>
</head>
<body>
	<h1>Hydropathy Index Plotter</h1>
	<form method="post" action="/plot">
		<label>Enter NCBI Accession ID of your peptide sequence or paste the FASTA sequence</label>
		<textarea name="input" rows="6">NP_001035835.1</textarea>

		<label>Input Type</label>
		<select name="input_type">
			<option value="accession">Accession ID</option>
			<option value="fasta">FASTA</option>
		</select>

		<label>Computation Model</label>
		<select name="model">
			<option value="linear">Linear Variation</option>
			<option value="exponential">Exponential Variation</option>
		</select>

		<label>Window Size (odd, 3-21)</label>
		<input type="number" name="window_size" min="3" max="21" step="2" value="%d">

		<label>Edge Weight (1-100)</label>
		<input type="number" name="edge_weight" min="1" max="100" step="1" value="%g">

		<button type="submit">Submit</button>
	</form>
</body>
</html>`

// errorHTML takes the escaped error message as a Printf argument.
const errorHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Hydropathy Index Plotter</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		.error { max-width: 640px; margin: 40px auto; background-color: #fdecea; border: 1px solid #e0b4b4; padding: 20px; color: #8a1f11; }
	</style>
</head>
<body>
	<div class="error">
		<p>%s</p>
		<p><a href="/">Back to the form</a></p>
	</div>
</body>
</html>`
