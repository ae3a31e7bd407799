package roster

import (
	"errors"
	"math/rand/v2"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

var (
	// ErrInvalidCapacity means the trip needs neither drivers nor non-drivers
	ErrInvalidCapacity = errors.New("trip has no driver or non-driver slots to fill")

	// ErrEmptyPool means there are no signups to allocate from
	ErrEmptyPool = errors.New("no signups to allocate")
)

// Selection is a proposed roster/waitlist split. Roster holds selected
// drivers followed by selected non-drivers; Waitlist holds the remaining
// driver overflow followed by the non-driver overflow. Nothing is written
// anywhere — committing a Selection is the approval flow's job.
type Selection struct {
	Roster   []model.Signup
	Waitlist []model.Signup
}

// RosterIDs returns the proposed roster identifiers in selection order
func (s Selection) RosterIDs() []string {
	return signupIDs(s.Roster)
}

// WaitlistIDs returns the proposed waitlist identifiers in selection order
func (s Selection) WaitlistIDs() []string {
	return signupIDs(s.Waitlist)
}

func signupIDs(signups []model.Signup) []string {
	ids := make([]string, len(signups))
	for i, s := range signups {
		ids[i] = s.ID
	}
	return ids
}

// Randomize draws a fresh candidate roster for the trip. Current statuses
// are ignored: every signup goes back into the draw. The driver-eligible and
// non-driver pools are shuffled independently with rng, the required slot
// counts are taken from the front of each, and unfilled non-driver seats are
// backfilled from the driver overflow (a driver-capable person can occupy a
// non-driver seat; the reverse is never true).
//
// rng must be non-nil; callers seed it themselves so tests can fix the draw.
func Randomize(trip model.Trip, signups []model.Signup, rng *rand.Rand) (Selection, error) {
	driverSlots := trip.DriverSlots
	nonDriverSlots := trip.NonDriverSlots()

	if driverSlots <= 0 && nonDriverSlots <= 0 {
		return Selection{}, ErrInvalidCapacity
	}
	if len(signups) == 0 {
		return Selection{}, ErrEmptyPool
	}

	var drivers, nonDrivers []model.Signup
	for _, s := range signups {
		if s.Driver {
			drivers = append(drivers, s)
		} else {
			nonDrivers = append(nonDrivers, s)
		}
	}

	shuffle(drivers, rng)
	shuffle(nonDrivers, rng)

	selectedDrivers, driverOverflow := take(drivers, driverSlots)
	selectedNonDrivers, nonDriverOverflow := take(nonDrivers, nonDriverSlots)

	// Backfill: driver-eligible overflow fills non-driver seats the
	// non-driver pool could not cover.
	if missing := nonDriverSlots - len(selectedNonDrivers); missing > 0 && len(driverOverflow) > 0 {
		fill, rest := take(driverOverflow, missing)
		selectedNonDrivers = append(selectedNonDrivers, fill...)
		driverOverflow = rest
	}

	roster := make([]model.Signup, 0, len(selectedDrivers)+len(selectedNonDrivers))
	roster = append(roster, selectedDrivers...)
	roster = append(roster, selectedNonDrivers...)

	waitlist := make([]model.Signup, 0, len(driverOverflow)+len(nonDriverOverflow))
	waitlist = append(waitlist, driverOverflow...)
	waitlist = append(waitlist, nonDriverOverflow...)

	return Selection{Roster: roster, Waitlist: waitlist}, nil
}

func shuffle(signups []model.Signup, rng *rand.Rand) {
	rng.Shuffle(len(signups), func(i, j int) {
		signups[i], signups[j] = signups[j], signups[i]
	})
}

// take splits signups into its first n elements and the remainder
func take(signups []model.Signup, n int) (head, tail []model.Signup) {
	if n > len(signups) {
		n = len(signups)
	}
	if n < 0 {
		n = 0
	}
	return signups[:n], signups[n:]
}
