package types

type (
	// Target is a directory scanned by the batch driver at a fixed depth.
	Target struct {
		Directory string `yaml:"directory" json:"directory"`
		Depth     int    `yaml:"depth" json:"depth"`
	}

	// BatchSummary counts the outcome of a batch run.
	BatchSummary struct {
		Scans   int `json:"scans"`
		Skipped int `json:"skipped"`
		Matches int `json:"matches"`
	}
)
