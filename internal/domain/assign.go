package domain

// BestFitTable picks the table for a confirmed booking: the smallest capacity
// that still seats the party, falling back to the lowest table number on
// capacity ties. Keeps larger tables free for larger parties. Returns false
// when no qualifying unclaimed table exists.
func BestFitTable(tables []Table, guests int, claimed map[int]bool) (int, bool) {
	best := Table{}
	found := false
	for _, t := range tables {
		if t.Capacity < guests || claimed[t.Number] {
			continue
		}
		if !found || t.Capacity < best.Capacity ||
			(t.Capacity == best.Capacity && t.Number < best.Number) {
			best = t
			found = true
		}
	}
	return best.Number, found
}

// CountAvailableTables counts tables that seat the party and are not claimed.
func CountAvailableTables(tables []Table, guests int, claimed map[int]bool) int {
	n := 0
	for _, t := range tables {
		if t.Capacity >= guests && !claimed[t.Number] {
			n++
		}
	}
	return n
}

// ClaimedTables builds the claimed-table set from the confirmed reservations
// of a slot. Non-confirmed reservations never occupy a table.
func ClaimedTables(reservations []Reservation) map[int]bool {
	claimed := make(map[int]bool, len(reservations))
	for _, r := range reservations {
		if r.Status == StatusConfirmed {
			claimed[r.TableNumber] = true
		}
	}
	return claimed
}
