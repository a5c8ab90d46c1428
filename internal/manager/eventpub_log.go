package manager

import "github.com/rs/zerolog"

// LogPublisher writes every event to a zerolog logger at debug level,
// except no-op departures which are logged at trace.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(l zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: l.With().Str("component", "manager").Logger()}
}

func (p *LogPublisher) Publish(e Event) {
	ev := p.log.Debug()
	if e.Name == EventLeaveNoop {
		ev = p.log.Trace()
	}
	ev = ev.Str("event_id", e.ID).Int("size", e.Size).Uint64("version", e.Version)
	if e.Capacity > 0 {
		ev = ev.Int("capacity", e.Capacity)
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg(e.Name)
}
