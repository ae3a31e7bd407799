package roster

import "github.com/calebmorton/trip-roster/pkg/core/model"

// Classification partitions a trip's signups into the three status classes.
// Signups with no recognised status belong to none of them; they are still
// candidates for randomization.
type Classification struct {
	Roster   []model.Signup
	Waitlist []model.Signup
	Dropped  []model.Signup
}

// Classify splits signups by their decoded status. Pure function, input
// order preserved within each class.
func Classify(signups []model.Signup) Classification {
	var c Classification

	for _, s := range signups {
		switch model.ParseStatus(s.Status).Kind {
		case model.StatusRoster:
			c.Roster = append(c.Roster, s)
		case model.StatusWaitlist:
			c.Waitlist = append(c.Waitlist, s)
		case model.StatusDropped:
			c.Dropped = append(c.Dropped, s)
		}
	}

	return c
}

// DriverCount counts driver-eligible signups within any subset
func DriverCount(signups []model.Signup) int {
	count := 0
	for _, s := range signups {
		if s.Driver {
			count++
		}
	}
	return count
}

// NonDriverCount counts signups without the driver flag within any subset
func NonDriverCount(signups []model.Signup) int {
	return len(signups) - DriverCount(signups)
}
