package domain

import "time"

// EventKind enumerates lifecycle events.
type EventKind int

const (
	EventJoined EventKind = iota + 1
	EventWindowElapsed
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventJoined:
		return "joined"
	case EventWindowElapsed:
		return "window_elapsed"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event drives a lifecycle transition. Count is only meaningful for
// EventJoined and carries the freshly recounted participant total.
type Event struct {
	Kind  EventKind
	Count int
	At    time.Time
}

// Joined builds a join event for the recounted total.
func Joined(count int, at time.Time) Event {
	return Event{Kind: EventJoined, Count: count, At: at}
}

// WindowElapsed builds a timeout event.
func WindowElapsed(at time.Time) Event {
	return Event{Kind: EventWindowElapsed, At: at}
}

// Cancelled builds a manual cancellation event.
func Cancelled(at time.Time) Event {
	return Event{Kind: EventCancelled, At: at}
}

// Transition is the outcome of applying an event to a campaign.
type Transition struct {
	Status                 Status
	Milestones             []Milestone
	NewlyReachedMilestones []Milestone
}

// Changed reports whether the transition altered the status relative to from.
func (t Transition) Changed(from Status) bool {
	return t.Status != from
}

// Apply computes the next status and milestone state for c under e. It does
// not modify c.
func Apply(c Campaign, e Event) Transition {
	out := Transition{
		Status:     c.Status,
		Milestones: cloneMilestones(c.Milestones),
	}
	if c.Status.Terminal() {
		return out
	}

	switch e.Kind {
	case EventJoined:
		if e.Count >= c.TargetCount {
			out.Status = StatusSuccess
		} else {
			out.Status = StatusActive
		}
		for i := range out.Milestones {
			m := &out.Milestones[i]
			if m.Reached || e.Count < m.ThresholdCount {
				continue
			}
			at := e.At
			m.Reached = true
			m.ReachedAt = &at
			out.NewlyReachedMilestones = append(out.NewlyReachedMilestones, *m)
		}
	case EventWindowElapsed:
		// a stored count that already proves the target wins over the timeout
		if c.CurrentCount >= c.TargetCount {
			out.Status = StatusSuccess
		} else {
			out.Status = StatusExpired
		}
	case EventCancelled:
		out.Status = StatusFailed
	}
	return out
}

// ApplyTo runs Apply and writes the result into c.
func ApplyTo(c *Campaign, e Event) Transition {
	t := Apply(*c, e)
	c.Status = t.Status
	c.Milestones = t.Milestones
	return t
}
