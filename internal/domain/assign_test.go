package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTables() []Table {
	return []Table{
		{Number: 1, Capacity: 2},
		{Number: 2, Capacity: 2},
		{Number: 3, Capacity: 4},
		{Number: 4, Capacity: 4},
		{Number: 5, Capacity: 6},
		{Number: 6, Capacity: 8},
	}
}

func TestBestFitTable(t *testing.T) {
	tests := []struct {
		name     string
		guests   int
		claimed  map[int]bool
		expected int
		found    bool
	}{
		{
			name:     "couple_gets_smallest_two_top",
			guests:   2,
			claimed:  map[int]bool{},
			expected: 1,
			found:    true,
		},
		{
			name:     "capacity_tie_breaks_on_lowest_number",
			guests:   3,
			claimed:  map[int]bool{},
			expected: 3,
			found:    true,
		},
		{
			name:     "claimed_tables_are_skipped",
			guests:   2,
			claimed:  map[int]bool{1: true, 2: true},
			expected: 3,
			found:    true,
		},
		{
			name:     "large_party_goes_straight_to_big_table",
			guests:   7,
			claimed:  map[int]bool{},
			expected: 6,
			found:    true,
		},
		{
			name:    "party_too_large_for_any_table",
			guests:  9,
			claimed: map[int]bool{},
			found:   false,
		},
		{
			name:    "all_qualifying_tables_claimed",
			guests:  5,
			claimed: map[int]bool{5: true, 6: true},
			found:   false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			number, found := BestFitTable(testTables(), testCase.guests, testCase.claimed)
			assert.Equal(t, testCase.found, found)
			if testCase.found {
				assert.Equal(t, testCase.expected, number)
			}
		})
	}
}

func TestBestFitTable_NeverWastesBigTables(t *testing.T) {
	// Seating couples one after another must walk through the two-tops
	// before touching anything larger.
	claimed := map[int]bool{}
	order := []int{}
	for {
		number, found := BestFitTable(testTables(), 2, claimed)
		if !found {
			break
		}
		claimed[number] = true
		order = append(order, number)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, order)
}

func TestCountAvailableTables(t *testing.T) {
	assert.Equal(t, 6, CountAvailableTables(testTables(), 1, map[int]bool{}))
	assert.Equal(t, 4, CountAvailableTables(testTables(), 4, map[int]bool{}))
	assert.Equal(t, 2, CountAvailableTables(testTables(), 4, map[int]bool{3: true, 5: true}))
	assert.Equal(t, 0, CountAvailableTables(testTables(), 10, map[int]bool{}))
}

func TestClaimedTables_OnlyConfirmedClaim(t *testing.T) {
	reservations := []Reservation{
		{TableNumber: 1, Status: StatusConfirmed},
		{TableNumber: 2, Status: StatusCanceled},
		{TableNumber: 3, Status: StatusCompleted},
		{TableNumber: 4, Status: StatusConfirmed},
	}

	claimed := ClaimedTables(reservations)
	assert.Equal(t, map[int]bool{1: true, 4: true}, claimed)
}
