package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mublin/mublin-web/pkg/domain"
)

const feeSeparator = " a "

// FeeRange renders a remuneration range in the marketplace copy: a single
// amount when min == max, otherwise "R$ min a R$ max". Callers must have
// already reduced the role set to open roles with disclosed fees; use
// OpenRoleFeeRange for that.
func FeeRange(min, max float64) string {
	if min == max {
		return "R$ " + amount(min)
	}
	return "R$ " + amount(min) + feeSeparator + "R$ " + amount(max)
}

// ParseFeeRange recovers the bounds of a string produced by FeeRange.
func ParseFeeRange(s string) (min, max float64, err error) {
	parts := strings.Split(s, feeSeparator)
	switch len(parts) {
	case 1:
		min, err = parseAmount(parts[0])
		return min, min, err
	case 2:
		if min, err = parseAmount(parts[0]); err != nil {
			return 0, 0, err
		}
		if max, err = parseAmount(parts[1]); err != nil {
			return 0, 0, err
		}
		return min, max, nil
	default:
		return 0, 0, fmt.Errorf("malformed fee range %q", s)
	}
}

// OpenRoleFeeRange computes the remuneration range over a gig's open roles.
// Filled roles and roles without a disclosed fee are excluded; when nothing
// remains it returns ErrNoOpenRoles so callers can suppress the badge instead
// of rendering a degenerate range.
func OpenRoleFeeRange(roles []domain.GigRole) (min, max float64, err error) {
	found := false
	for _, role := range roles {
		if role.IsFilled || role.Fee == nil {
			continue
		}
		fee := *role.Fee
		if !found {
			min, max = fee, fee
			found = true
			continue
		}
		if fee < min {
			min = fee
		}
		if fee > max {
			max = fee
		}
	}
	if !found {
		return 0, 0, domain.ErrNoOpenRoles
	}
	return min, max, nil
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed fee amount %q", s)
	}
	return v, nil
}
