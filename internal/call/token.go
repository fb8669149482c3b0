package call

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatToken renders a call in the canonical uppercase wire token
// format: "P", "X", "XX", or "<level><strain>".
func FormatToken(c Call) string {
	switch c.Kind {
	case KindPass:
		return "P"
	case KindDouble:
		return "X"
	case KindRedouble:
		return "XX"
	case KindBid:
		return fmt.Sprintf("%d%s", c.Level, strainLetter(c.Strain))
	default:
		return ""
	}
}

func strainLetter(s Strain) string {
	switch s {
	case StrainClubs:
		return "C"
	case StrainDiamonds:
		return "D"
	case StrainHearts:
		return "H"
	case StrainSpades:
		return "S"
	case StrainNotrump:
		return "N"
	default:
		return "?"
	}
}

func strainFromLetter(l byte) (Strain, error) {
	switch l {
	case 'C':
		return StrainClubs, nil
	case 'D':
		return StrainDiamonds, nil
	case 'H':
		return StrainHearts, nil
	case 'S':
		return StrainSpades, nil
	case 'N':
		return StrainNotrump, nil
	default:
		return 0, fmt.Errorf("unknown strain letter %q", l)
	}
}

// ParseToken parses a single call token, case-insensitively.
func ParseToken(tok string) (Call, error) {
	u := strings.ToUpper(strings.TrimSpace(tok))
	switch u {
	case "P", "PASS":
		return Pass, nil
	case "X", "D", "DBL":
		return Double, nil
	case "XX", "R", "RDBL":
		return Redouble, nil
	}
	if len(u) != 2 {
		return Call{}, fmt.Errorf("malformed call token %q", tok)
	}
	level, err := strconv.Atoi(u[:1])
	if err != nil {
		return Call{}, fmt.Errorf("malformed call token %q: %w", tok, err)
	}
	strain, err := strainFromLetter(u[1])
	if err != nil {
		return Call{}, fmt.Errorf("malformed call token %q: %w", tok, err)
	}
	return NewBid(level, strain)
}

// ParseTokens parses a comma-separated calls-csv string.
func ParseTokens(csv string) ([]Call, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	calls := make([]Call, 0, len(parts))
	for _, p := range parts {
		c, err := ParseToken(p)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}

// FormatTokens renders calls back into calls-csv form.
func FormatTokens(calls []Call) string {
	toks := make([]string, len(calls))
	for i, c := range calls {
		toks[i] = FormatToken(c)
	}
	return strings.Join(toks, ",")
}
