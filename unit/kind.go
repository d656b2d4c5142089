package unit

// Kind identifies a unit's behavioral class. Base is a classification,
// not a representation: a canonical unit with exactly one factor of
// exponent one reports KindBase.
type Kind int

const (
	KindBase Kind = iota
	KindCanonical
	KindAffine
	KindRefLog
	KindUnrefLog

	KindTotal // sentinel, keep last
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindCanonical:
		return "canonical"
	case KindAffine:
		return "affine"
	case KindRefLog:
		return "referenced-log"
	case KindUnrefLog:
		return "unreferenced-log"
	default:
		return "unknown"
	}
}
