package entities

// Profile is the user's self-reported or AI-extracted career data. It is
// supplied by the caller on every request and never persisted here.
type Profile struct {
	Skills      []string
	Interests   []string
	Major       string
	CareerLevel CareerLevel
}

func (p Profile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Interests) == 0
}
