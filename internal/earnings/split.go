// Package earnings implements the revenue-split rule and the date-range and
// scope arithmetic behind every earnings aggregation in the app.
package earnings

// Role is a user's role in the shop.
type Role string

const (
	// RoleOwner ("jefe") has full visibility and keeps 100% of revenue.
	RoleOwner Role = "jefe"
	// RoleBarber ("barbero") sees only own records and keeps half.
	RoleBarber Role = "barbero"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleBarber
}

// Split returns the share of a haircut total attributed to the user who
// performed it: the owner keeps everything, a barber splits 50/50 with the
// shop. The result is stored on the record at creation time and never
// recomputed, so historical earnings are unaffected by later role changes.
func Split(total float64, role Role) float64 {
	if role == RoleOwner {
		return total
	}
	return total / 2
}
