package match

// Label bands a match percentage into the wording shown to users.
func Label(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent Match"
	case percentage >= 60:
		return "Good Match"
	case percentage >= 40:
		return "Moderate Match"
	default:
		return "Potential Match"
	}
}
