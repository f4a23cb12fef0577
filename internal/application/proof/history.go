package proof

// StepEntry records one rule application (section 4.5).
type StepEntry struct {
	Index      int
	Rule       string
	Target     Target
	DurationMs float64
}

// Stats summarizes a finished (or in-progress) tableau (section 6).
type Stats struct {
	Result           string // "valid" | "invalid" | "incomplete"
	Branches         int
	OpenBranches     int
	ClosedBranches   int
	Steps            int
	RulesApplied     int
	BuildDurationMs  float64
	TrunkDurationMs  float64
	TreeDurationMs   float64
	ModelsDurationMs float64
}
