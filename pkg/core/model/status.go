package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StatusKind is the category a status string places a signup in
type StatusKind int

const (
	// StatusNone is a signup with no recognised status (blank, never placed)
	StatusNone StatusKind = iota
	// StatusRoster is a committed roster member
	StatusRoster
	// StatusWaitlist is an overflow participant waiting for a slot
	StatusWaitlist
	// StatusDropped is a soft-removed participant
	StatusDropped
)

// DroppedDateLayout is the date format embedded in dropped markers (MM/DD/YYYY)
const DroppedDateLayout = "01/02/2006"

// Status is the decoded form of a signup status string. All internal logic
// operates on this type; the raw string format exists only at the record
// store boundary (ParseStatus / Encode).
type Status struct {
	Kind StatusKind

	// Driver is the role encoded in the status (a backfilled driver on a
	// non-driver seat carries Driver == false here even though the signup's
	// eligibility flag is true). Meaningful for roster and waitlist kinds.
	Driver bool

	// Position is the 1-based waitlist position within the driver or
	// non-driver sub-queue. Zero for legacy entries with no position.
	Position int

	// Date is the MM/DD/YYYY drop date for dropped entries
	Date string

	// Legacy marks raw statuses from the old system ("ON TRIP", "WAITLIST")
	// that carry no role or position information
	Legacy bool

	// Raw preserves the stored string the status was parsed from
	Raw string
}

// ParseStatus decodes a stored status string. Matching is by case-insensitive
// substring: "dropped" wins over everything, then "selected"/"on trip", then
// "waitlist". Anything else is StatusNone. The strict precedence resolves the
// theoretical overlap between classes; strings written by this service never
// collide.
func ParseStatus(raw string) Status {
	s := Status{Raw: raw}
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "dropped"):
		s.Kind = StatusDropped
		if i := strings.Index(lower, "dropped-"); i >= 0 {
			s.Date = strings.TrimSpace(raw[i+len("dropped-"):])
		}
	case strings.Contains(lower, "selected"), strings.Contains(lower, "on trip"):
		s.Kind = StatusRoster
		s.Driver = strings.Contains(lower, "(driver)")
		s.Legacy = !strings.Contains(lower, "selected")
	case strings.Contains(lower, "waitlist"):
		s.Kind = StatusWaitlist
		s.Driver = strings.Contains(lower, "(driver)")
		if i := strings.LastIndex(raw, "-"); i >= 0 {
			if pos, err := strconv.Atoi(strings.TrimSpace(raw[i+1:])); err == nil {
				s.Position = pos
			}
		}
		s.Legacy = !strings.Contains(lower, "(")
	}

	return s
}

// RosterStatus builds a committed roster status for the given role
func RosterStatus(driver bool) Status {
	return Status{Kind: StatusRoster, Driver: driver}
}

// WaitlistStatus builds a waitlist status at the given 1-based position
// within the role's sub-queue
func WaitlistStatus(driver bool, position int) Status {
	return Status{Kind: StatusWaitlist, Driver: driver, Position: position}
}

// DroppedStatus builds a date-stamped dropped marker
func DroppedStatus(droppedOn time.Time) Status {
	return Status{Kind: StatusDropped, Date: droppedOn.Format(DroppedDateLayout)}
}

// Encode renders the canonical stored string for the status. Legacy statuses
// round-trip unchanged so re-saving an untouched record never rewrites it.
func (s Status) Encode() string {
	if s.Legacy {
		return s.Raw
	}

	switch s.Kind {
	case StatusRoster:
		if s.Driver {
			return "Selected (driver)"
		}
		return "Selected (nondriver)"
	case StatusWaitlist:
		role := "nondriver"
		if s.Driver {
			role = "driver"
		}
		return fmt.Sprintf("Waitlist (%s) - %d", role, s.Position)
	case StatusDropped:
		return "Dropped- " + s.Date
	}

	return s.Raw
}
