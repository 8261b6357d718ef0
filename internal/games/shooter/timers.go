package shooter

import "container/heap"

// TimerEvent names what a timer does when it fires.
type TimerEvent int

const (
	EventLevelUp        TimerEvent = iota // Difficulty controller tick
	EventShoot                            // Owner fires its weapon
	EventExpire                           // Owner is destroyed (bullet/drop lifetime)
	EventGameOverNotice                   // Death sequence finished
)

// TimerID identifies a scheduled timer.
type TimerID uint64

// Timer is an entry in the TimerQueue. Timers carry an event and an owner
// handle instead of a callback, so nothing outlives the entity it refers to.
type Timer struct {
	ID       TimerID
	Event    TimerEvent
	Owner    Handle  // NoHandle for timers not bound to an entity
	At       float64 // next fire time in ms
	Interval float64 // 0 for one-shot timers

	seq   uint64
	index int
}

// TimerQueue schedules one-shot and repeating timers on simulation time.
type TimerQueue struct {
	items timerHeap
	byID  map[TimerID]*Timer
	next  TimerID
	seq   uint64
	alive func(Handle) bool
}

// NewTimerQueue creates a queue that drops timers whose owner is not alive.
// A nil alive func treats every owner as alive.
func NewTimerQueue(alive func(Handle) bool) *TimerQueue {
	return &TimerQueue{
		byID:  make(map[TimerID]*Timer),
		alive: alive,
	}
}

// After schedules a one-shot timer delay ms after now.
func (q *TimerQueue) After(now, delay float64, ev TimerEvent, owner Handle) TimerID {
	return q.push(&Timer{Event: ev, Owner: owner, At: now + delay})
}

// Every schedules a repeating timer firing every interval ms, first at now+interval.
func (q *TimerQueue) Every(now, interval float64, ev TimerEvent, owner Handle) TimerID {
	if interval <= 0 {
		return 0
	}
	return q.push(&Timer{Event: ev, Owner: owner, At: now + interval, Interval: interval})
}

func (q *TimerQueue) push(t *Timer) TimerID {
	q.next++
	t.ID = q.next
	q.seq++
	t.seq = q.seq
	heap.Push(&q.items, t)
	q.byID[t.ID] = t
	return t.ID
}

// Cancel removes a pending timer. Unknown IDs are ignored.
func (q *TimerQueue) Cancel(id TimerID) {
	t, ok := q.byID[id]
	if !ok {
		return
	}
	heap.Remove(&q.items, t.index)
	delete(q.byID, id)
}

// CancelAll removes every pending timer.
func (q *TimerQueue) CancelAll() {
	q.items = q.items[:0]
	clear(q.byID)
}

// Len returns the number of pending timers.
func (q *TimerQueue) Len() int {
	return len(q.items)
}

// PopDue returns the earliest timer due at or before now.
// Repeating timers are rescheduled before being returned. Timers whose
// owner is gone are discarded silently.
func (q *TimerQueue) PopDue(now float64) (Timer, bool) {
	for len(q.items) > 0 {
		t := q.items[0]
		if t.At > now {
			return Timer{}, false
		}

		if t.Owner != NoHandle && q.alive != nil && !q.alive(t.Owner) {
			heap.Pop(&q.items)
			delete(q.byID, t.ID)
			continue
		}

		fired := *t
		if t.Interval > 0 {
			t.At += t.Interval
			q.seq++
			t.seq = q.seq
			heap.Fix(&q.items, t.index)
		} else {
			heap.Pop(&q.items)
			delete(q.byID, t.ID)
		}
		return fired, true
	}
	return Timer{}, false
}

// timerHeap orders timers by fire time, then by scheduling order.
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
