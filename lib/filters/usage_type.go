package filters

type UsageType int

const (
	DontCare UsageType = iota
	Include
	Exclude // Exclude has preference over Include
)

func (u UsageType) Merge(other UsageType) UsageType {
	switch {
	case u == other:
		return u
	case u == Exclude || other == Exclude:
		return Exclude
	case u == DontCare:
		return other
	default:
		return u
	}
}

// DecideFor resolves DontCare: when there are include rules, anything they did not
// match is out; when there are only exclude rules, it is in.
func (u UsageType) DecideFor(hasIncludes bool) bool {
	switch u {
	case Include:
		return true
	case Exclude:
		return false
	default:
		return !hasIncludes
	}
}
