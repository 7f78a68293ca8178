package planner

// DistributeDays spreads the total trip days across the sequenced
// destinations. Every destination starts at total/n days; the remainder
// is offered one day at a time to destinations in order, but a
// destination only takes the extra day when its recommended stay
// exceeds the base. Otherwise the extra day is dropped, so the
// allocation can sum to less than totalDays — the day loop in Generate
// simply stops once it has emitted totalDays entries. Every entry is
// clamped to at least 1.
func DistributeDays(catalog *Catalog, route []string, totalDays int) []int {
	n := len(route)
	if n == 0 {
		return nil
	}

	base := totalDays / n
	extra := totalDays % n

	allocation := make([]int, n)
	for i := range allocation {
		allocation[i] = base
	}

	for i := 0; i < extra; i++ {
		idx := i % n
		dest, ok := catalog.Destination(route[idx])
		if ok && dest.RecommendedDuration > base {
			allocation[idx]++
		}
	}

	for i := range allocation {
		if allocation[i] < 1 {
			allocation[i] = 1
		}
	}
	return allocation
}
