package scoring

// Interpret maps a final score (0-100) to its interpretation label.
func Interpret(score float64) string {
	switch {
	case score >= 90:
		return "Excellent Match"
	case score >= 75:
		return "Good Match"
	case score >= 60:
		return "Moderate Match"
	case score >= 40:
		return "Weak Match"
	default:
		return "Poor Match"
	}
}
