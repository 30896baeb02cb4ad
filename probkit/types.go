package probkit

// RunResult contains the result of a generation run.
// It is encoded as JSON for tooling integration.
type RunResult struct {
	Success  bool            `json:"success"`
	DryRun   bool            `json:"dryRun,omitempty"`
	Problems []ManifestEntry `json:"problems,omitempty"`
	Errors   []string        `json:"errors,omitempty"`
	Stats    RunStats        `json:"stats"`
}

// RunStats contains statistics from a generation run.
type RunStats struct {
	ProblemsGenerated int `json:"problemsGenerated"`
	LinesEmitted      int `json:"linesEmitted"`
}

// AddProblem records a generated problem and updates stats.
func (r *RunResult) AddProblem(e ManifestEntry) {
	r.Problems = append(r.Problems, e)
	r.Stats.ProblemsGenerated++
	r.Stats.LinesEmitted += e.Lines
}

// AddError records an error and marks the run as failed.
func (r *RunResult) AddError(err error) {
	r.Errors = append(r.Errors, err.Error())
	r.Success = false
}
