package manager

import "seatd/pkg/types"

// maxSlack is the number of spare seats a table may have and still be offered.
const maxSlack = 1

// Fits reports whether t can seat g: enough seats, and at most one to spare.
func Fits(t types.Table, g types.ClientsGroup) bool {
	return t.Capacity >= g.Size && t.Capacity-g.Size <= maxSlack
}

func indexOfTable(tables []types.Table, t types.Table) int {
	for i := range tables {
		if tables[i] == t {
			return i
		}
	}
	return -1
}
