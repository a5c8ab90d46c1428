package types

// GroupRequest is the payload of POST /arrivals and POST /departures.
type GroupRequest struct {
	// Party size.
	// example: 3
	Size int `json:"size" example:"3"`
}

// AdmissionResponse reports what happened to an arriving group.
type AdmissionResponse struct {
	// True when a free table was assigned immediately.
	// example: true
	Seated bool `json:"seated" example:"true"`
	// The table the group was seated at, when seated.
	Table *Table `json:"table,omitempty"`
	// 1-based position in the waiting queue, when queued.
	// example: 0
	QueuePosition int `json:"queue_position,omitempty" example:"0"`
	// Manager state version after the arrival.
	// example: 7
	Version uint64 `json:"version" example:"7"`
}

// DepartureResponse reports what happened to a leaving group.
type DepartureResponse struct {
	// Table retired from the free pool, if one matched the group.
	RetiredTable *Table `json:"retired_table,omitempty"`
	// Number of waiting entries removed from the queue.
	// example: 1
	Dequeued int `json:"dequeued" example:"1"`
	// Manager state version after the departure.
	// example: 8
	Version uint64 `json:"version" example:"8"`
}

// LookupResponse is returned by GET /lookup when a table qualifies.
type LookupResponse struct {
	Table Table `json:"table"`
}

// TablesResponse wraps the free tables returned by GET /tables.
type TablesResponse struct {
	// Free tables in pool order.
	Tables []Table `json:"tables"`
}

// OccupancyResponse is returned by GET /tables/{capacity}/occupied.
type OccupancyResponse struct {
	// example: 4
	Capacity int `json:"capacity" example:"4"`
	// True when no free table of this capacity is in the pool.
	// example: false
	Occupied bool `json:"occupied" example:"false"`
}

// QueueResponse wraps the waiting queue returned by GET /queue.
type QueueResponse struct {
	// Waiting groups in arrival order.
	Queue []ClientsGroup `json:"queue"`
}

// ChangeResponse is returned by GET /changes when the state moved past the requested version.
type ChangeResponse struct {
	// example: 9
	Version uint64 `json:"version" example:"9"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status and pushed on the websocket feed.
type StatusResponse struct {
	// Free tables in pool order.
	FreeTables []Table `json:"free_tables"`
	// Waiting groups in arrival order.
	Queue []ClientsGroup `json:"queue"`
	// Total groups seated on arrival.
	// example: 12
	SeatedTotal uint64 `json:"seated_total" example:"12"`
	// Total groups that had to wait.
	// example: 3
	QueuedTotal uint64 `json:"queued_total" example:"3"`
	// Total tables retired by departures.
	// example: 2
	RetiredTotal uint64 `json:"retired_total" example:"2"`
	// Total queue entries removed by departures.
	// example: 1
	DequeuedTotal uint64 `json:"dequeued_total" example:"1"`
	// Manager state version; increases on every arrival and departure.
	// example: 18
	Version uint64 `json:"version" example:"18"`
	// Uptime of the manager in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
