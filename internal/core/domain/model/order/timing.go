package order

import (
	"fmt"
	"time"
)

// Status classes used by the board to colour tickets.
const (
	ClassNone     = ""
	ClassWarning  = "warning"
	ClassCritical = "critical"
)

// ElapsedMinutes returns the whole minutes between createdAt and now, never negative.
func ElapsedMinutes(createdAt, now time.Time) int {
	d := now.Sub(createdAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// FormatElapsed renders minutes as "{m}m" below an hour and "{h}:{mm}" from an hour on.
func FormatElapsed(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ClassFor returns the urgency class of an order in status after elapsed
// minutes. Ready and terminal orders are never flagged.
func ClassFor(status Status, elapsed, warningMinutes, criticalMinutes int) string {
	if status == Ready || status.IsTerminal() {
		return ClassNone
	}
	switch {
	case elapsed >= criticalMinutes:
		return ClassCritical
	case elapsed >= warningMinutes:
		return ClassWarning
	default:
		return ClassNone
	}
}

func (o *Order) ElapsedMinutes(now time.Time) int {
	return ElapsedMinutes(o.createdAt, now)
}

func (o *Order) ElapsedDisplay(now time.Time) string {
	return FormatElapsed(o.ElapsedMinutes(now))
}

func (o *Order) StatusClass(now time.Time, warningMinutes, criticalMinutes int) string {
	return ClassFor(o.status, o.ElapsedMinutes(now), warningMinutes, criticalMinutes)
}
