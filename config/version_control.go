package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Hydro_Plot   = "v1.0.0"
	Seq_Preview  = "v1.0.0"
	NCBI_Fetch   = "v1.0.0"
	Web_Server   = "v1.0.0"
	Sanity_check = "v1.0.0"
	Benchmark    = "v1.0.0"
)
