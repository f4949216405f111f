package decimal

// Locale abstracts the presentation details Format needs without
// pulling in real locale data: the radix point, the digit-group
// separator, and the group size. Only a default "C" locale ships;
// embedding applications supply their own Locale for anything beyond
// that.
type Locale interface {
	DecimalPoint() string
	GroupSeparator() string
	// GroupSize returns how many digits form a group for the "," format
	// flag and the "n" format type (3 for thousands-grouping locales); 0
	// disables grouping.
	GroupSize() int
}

type cLocale struct{}

func (cLocale) DecimalPoint() string   { return "." }
func (cLocale) GroupSeparator() string { return "," }
func (cLocale) GroupSize() int         { return 3 }

// DefaultLocale is the locale Format/String use when none is given:
// "." as the radix point, "," as the group separator in groups of 3,
// applied only when the format spec's "," flag or "n" type requests
// grouping.
var DefaultLocale Locale = cLocale{}
