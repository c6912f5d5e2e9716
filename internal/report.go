package internal

import (
	"sort"
	"time"
)

// ChronRow is one line of the chronological report.
type ChronRow struct {
	TaskRef string
	Message string
	Start   time.Time
	End     time.Time
	EndKind EndKind
	Link    LinkTarget
}

// TimeRow is one line of the time-tracking report: all of a task's sessions
// in the window collapsed into a total.
type TimeRow struct {
	TaskRef  string
	Total    time.Duration
	Known    bool // false when the total includes an open-ended orphan
	Sessions int
	Start    time.Time // earliest session start, used for tie-breaking
	Link     LinkTarget
}

// ChronologicalReport lists sessions in start order with their resolved
// links attached. Session order is preserved from the reconstructor, which
// already emits by start ascending.
func ChronologicalReport(sessions []TaskSession, cfg LinkConfig) []ChronRow {
	rows := make([]ChronRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, ChronRow{
			TaskRef: s.TaskRef,
			Message: s.Message,
			Start:   s.Start,
			End:     s.End,
			EndKind: s.EndKind,
			Link:    ResolveTarget(s.TaskRef, cfg),
		})
	}
	return rows
}

// TimeTrackingReport groups sessions by task reference and orders the groups
// by total duration descending. Ties break by earliest start ascending, then
// by reference lexicographically, so output is deterministic. A group whose
// duration is unknown (an orphan with no assumed end-of-work) sorts last
// regardless of any partial total.
func TimeTrackingReport(sessions []TaskSession, cfg LinkConfig) []TimeRow {
	byRef := make(map[string]*TimeRow)
	var order []string
	for _, s := range sessions {
		row, ok := byRef[s.TaskRef]
		if !ok {
			row = &TimeRow{
				TaskRef: s.TaskRef,
				Known:   true,
				Start:   s.Start,
				Link:    ResolveTarget(s.TaskRef, cfg),
			}
			byRef[s.TaskRef] = row
			order = append(order, s.TaskRef)
		}
		row.Sessions++
		if s.Start.Before(row.Start) {
			row.Start = s.Start
		}
		d, ok := s.Duration()
		if !ok {
			row.Known = false
			continue
		}
		row.Total += d
	}

	rows := make([]TimeRow, 0, len(order))
	for _, ref := range order {
		rows = append(rows, *byRef[ref])
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Known != rows[j].Known {
			return rows[i].Known
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if !rows[i].Start.Equal(rows[j].Start) {
			return rows[i].Start.Before(rows[j].Start)
		}
		return rows[i].TaskRef < rows[j].TaskRef
	})
	return rows
}
