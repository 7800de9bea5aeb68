package naming

// StemBudget returns how many bytes a stem shared by siblings may use so
// that every sibling, rebuilt with its own extensions, fits in maxLen.
// The widest extension overhead decides. The result saturates at 0, which
// leaves the extensions alone.
func StemBudget(siblings []NameParts, maxLen int) int {
	worst := 0
	for _, p := range siblings {
		if o := p.Overhead(); o > worst {
			worst = o
		}
	}
	return saturatingSub(maxLen, worst)
}

func saturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
