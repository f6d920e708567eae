package match

// JobWeights is the weighting scheme for scoring a profile against a single
// job posting: skills dominate, field of study and experience level refine.
type JobWeights struct {
	Skills float64
	Major  float64
	Level  float64
}

// PathWeights is the weighting scheme for scoring a profile against a broad
// career path category. Paths have no majors or levels; instead the user's
// interests and the path's domain keywords contribute.
type PathWeights struct {
	Skills    float64
	Interests float64
	Keywords  float64
}

var (
	DefaultJobWeights  = JobWeights{Skills: 0.60, Major: 0.25, Level: 0.15}
	DefaultPathWeights = PathWeights{Skills: 0.50, Interests: 0.30, Keywords: 0.20}
)
