package format

import (
	"fmt"
	"math"
	"time"
)

var weekdaysPT = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// EventDate renders a gig date as "DD/MM/YYYY (label)". The label is "Hoje"
// when the date falls on the same calendar day as now, otherwise the pt-BR
// weekday name. Both times are compared in now's location.
func EventDate(d, now time.Time) string {
	d = d.In(now.Location())
	label := weekdaysPT[d.Weekday()]
	if sameDay(d, now) {
		label = "Hoje"
	}
	return d.Format("02/01/2006") + " (" + label + ")"
}

// AbsoluteDate renders "DD/MM/YYYY" without a weekday label, as used on the
// "Publicada em" line.
func AbsoluteDate(d time.Time) string {
	return d.Format("02/01/2006")
}

// RelativeTime renders a pt-BR "time ago" phrase for t relative to now, with
// the same thresholds the web client's date library used. Timestamps at or
// after now collapse to the smallest bucket.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < 45*time.Second:
		return "há alguns segundos"
	case d < 90*time.Second:
		return "há um minuto"
	case d < 45*time.Minute:
		return fmt.Sprintf("há %d minutos", round(d.Minutes()))
	case d < 90*time.Minute:
		return "há uma hora"
	case d < 22*time.Hour:
		return fmt.Sprintf("há %d horas", round(d.Hours()))
	case d < 36*time.Hour:
		return "há um dia"
	case d < 26*24*time.Hour:
		return fmt.Sprintf("há %d dias", round(d.Hours()/24))
	case d < 46*24*time.Hour:
		return "há um mês"
	case d < 320*24*time.Hour:
		return fmt.Sprintf("há %d meses", round(d.Hours()/24/30))
	case d < 548*24*time.Hour:
		return "há um ano"
	default:
		return fmt.Sprintf("há %d anos", round(d.Hours()/24/365))
	}
}

// Clock trims a backend "HH:MM:SS" time-of-day field to "HH:MM".
func Clock(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// ClockRange renders a stage or event time window: "das 20:00 às 23:30".
// Empty inputs yield an empty string so callers can omit the line.
func ClockRange(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	return "das " + Clock(start) + " às " + Clock(end)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func round(v float64) int {
	return int(math.Round(v))
}
