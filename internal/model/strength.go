package model

// Class names in the fixed reporting order.
const (
	ClassUpper  = "upper"
	ClassLower  = "lower"
	ClassDigit  = "digit"
	ClassSymbol = "symbol"
)

// Advisory messages attached to evaluation results.
const (
	AdviceAllClasses = "Tip: include at least one uppercase, one lowercase, one digit, and one special character."
	AdviceLonger     = "Tip: make the password longer (>=12 chars) to increase strength."
)

// ClassFlags records which character classes a password contains.
type ClassFlags struct {
	Upper  bool `json:"upper"`
	Lower  bool `json:"lower"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`
}

// Count returns the number of classes present.
func (f ClassFlags) Count() int {
	n := 0
	for _, set := range []bool{f.Upper, f.Lower, f.Digit, f.Symbol} {
		if set {
			n++
		}
	}
	return n
}

// Missing returns the names of the absent classes, always in the order
// upper, lower, digit, symbol.
func (f ClassFlags) Missing() []string {
	var missing []string
	if !f.Upper {
		missing = append(missing, ClassUpper)
	}
	if !f.Lower {
		missing = append(missing, ClassLower)
	}
	if !f.Digit {
		missing = append(missing, ClassDigit)
	}
	if !f.Symbol {
		missing = append(missing, ClassSymbol)
	}
	return missing
}

// Rating is the human-readable strength label derived from a score.
type Rating int

const (
	RatingUnknown Rating = iota
	RatingTooWeak
	RatingWeak
	RatingAverage
	RatingNotThatStrong
	RatingStrong
	RatingExtremelyStrong
)

// String returns the user-facing label for the rating.
func (r Rating) String() string {
	switch r {
	case RatingTooWeak:
		return "Too weak"
	case RatingWeak:
		return "Weak"
	case RatingAverage:
		return "Average"
	case RatingNotThatStrong:
		return "Not that strong"
	case RatingStrong:
		return "Strong"
	case RatingExtremelyStrong:
		return "Extremely strong"
	default:
		return "Unknown"
	}
}

// RatingForScore maps a score in [0,8] to its rating. Scores outside that
// range map to RatingUnknown.
func RatingForScore(score int) Rating {
	switch {
	case score < 0 || score > 8:
		return RatingUnknown
	case score == 0:
		return RatingTooWeak
	case score <= 2:
		return RatingWeak
	case score == 3:
		return RatingAverage
	case score == 4:
		return RatingNotThatStrong
	case score <= 6:
		return RatingStrong
	default:
		return RatingExtremelyStrong
	}
}

// EvaluationResult is the outcome of evaluating a single password.
type EvaluationResult struct {
	Score      int        `json:"score"`
	ClassCount int        `json:"class_count"`
	Flags      ClassFlags `json:"flags"`
	Missing    []string   `json:"missing,omitempty"`
	Length     int        `json:"length,omitempty"`
	Rating     Rating     `json:"rating,omitempty"`
	Rated      bool       `json:"rated"`
	TooCommon  bool       `json:"too_common"`
	Advice     string     `json:"advice,omitempty"`
}
