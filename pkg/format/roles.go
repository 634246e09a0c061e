package format

import (
	"fmt"
	"strings"

	"github.com/mublin/mublin-web/pkg/domain"
)

// maxStars is the number of positions an experience rating renders.
const maxStars = 3

// PartitionRoles splits roles into open and filled slots, preserving the
// input order within each partition. Both slices are non-nil.
func PartitionRoles(roles []domain.GigRole) (open, filled []domain.GigRole) {
	open = make([]domain.GigRole, 0, len(roles))
	filled = make([]domain.GigRole, 0, len(roles))
	for _, role := range roles {
		if role.IsFilled {
			filled = append(filled, role)
		} else {
			open = append(open, role)
		}
	}
	return open, filled
}

// ExperienceStars renders an experience level as exactly three glyphs: the
// first level positions active, the remainder dimmed. Levels outside [0,3]
// are clamped, never rejected.
func ExperienceStars(level int) string {
	if level < 0 {
		level = 0
	}
	if level > maxStars {
		level = maxStars
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", maxStars-level)
}

// CountLabel renders "1 vaga" / "3 vagas" style counters.
func CountLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
