package planner

// tourCircuit is the master ordering of the Kerala circuit. Every
// duration bucket returns a strict prefix of it, so shorter trips are
// always subsets of longer ones.
var tourCircuit = []string{
	"Kochi", "Munnar", "Thekkady", "Alleppey", "Kumarakom", "Kovalam", "Wayanad",
}

// SelectDestinations maps a trip duration to the fixed ordered list of
// destinations to visit. A step function on duration only; preferences
// and budget play no part here.
func SelectDestinations(durationDays int) []string {
	var n int
	switch {
	case durationDays <= 3:
		n = 2
	case durationDays <= 5:
		n = 3
	case durationDays <= 7:
		n = 4
	case durationDays <= 10:
		n = 5
	default:
		n = len(tourCircuit)
	}

	selected := make([]string, n)
	copy(selected, tourCircuit[:n])
	return selected
}
