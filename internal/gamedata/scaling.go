package gamedata

// GradeForValue maps a raw stat value to its letter grade on the
// scaling table
func GradeForValue(value int) Grade {
	switch {
	case value >= 30:
		return GradeS
	case value >= 25:
		return GradeA
	case value >= 20:
		return GradeB
	case value >= 14:
		return GradeC
	case value >= 8:
		return GradeD
	default:
		return GradeE
	}
}

// Bonus returns the flat roll bonus a grade earns
func (g Grade) Bonus() int {
	switch g {
	case GradeS:
		return 5
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}
