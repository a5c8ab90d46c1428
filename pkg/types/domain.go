package types

// Table is a seating unit with a fixed number of seats.
// Tables compare by value: two tables with the same capacity are interchangeable.
type Table struct {
	// Number of seats.
	// example: 4
	Capacity int `json:"capacity" yaml:"capacity" toml:"capacity" example:"4"`
}

// ClientsGroup is a party of clients that arrives and leaves together.
// Groups have no identity beyond their size.
type ClientsGroup struct {
	// Number of people in the party.
	// example: 3
	Size int `json:"size" yaml:"size" toml:"size" example:"3"`
}
