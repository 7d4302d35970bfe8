package svg

// LineCap is the shape drawn at the ends of open stroked paths.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return ""
	}
}

// LineJoin is the shape drawn at the corners of stroked paths.
type LineJoin int

const (
	JoinArcs LineJoin = iota
	JoinBevel
	JoinMiter
	JoinMiterClip
	JoinRound
)

func (j LineJoin) String() string {
	switch j {
	case JoinArcs:
		return "arcs"
	case JoinBevel:
		return "bevel"
	case JoinMiter:
		return "miter"
	case JoinMiterClip:
		return "miter-clip"
	case JoinRound:
		return "round"
	default:
		return ""
	}
}

// ParseLineCap maps a config keyword to a LineCap.
func ParseLineCap(s string) (LineCap, bool) {
	for c := CapButt; c <= CapSquare; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return CapButt, false
}

// ParseLineJoin maps a config keyword to a LineJoin.
func ParseLineJoin(s string) (LineJoin, bool) {
	for j := JoinArcs; j <= JoinRound; j++ {
		if j.String() == s {
			return j, true
		}
	}
	return JoinArcs, false
}
