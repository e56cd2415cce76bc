package ledger

import (
	"sort"
	"time"

	"household-ledger/internal/models"
)

// Status places an event or reminder relative to today.
type Status string

const (
	StatusPast       Status = "past"
	StatusToday      Status = "today"
	StatusInProgress Status = "in_progress"
	StatusUpcoming   Status = "upcoming"
)

func eventEnd(e models.Event) string {
	if e.EndDate != "" {
		return datePart(e.EndDate)
	}
	return datePart(e.StartDate)
}

// EventStatusOf compares dates only. A multi-day event that started before
// today and ends after it is in progress.
func EventStatusOf(e models.Event, today time.Time) Status {
	d := Day(today)
	start, end := datePart(e.StartDate), eventEnd(e)
	switch {
	case start == d || end == d:
		return StatusToday
	case start > d:
		return StatusUpcoming
	case end < d:
		return StatusPast
	}
	return StatusInProgress
}

func ReminderStatusOf(r models.Reminder, today time.Time) Status {
	d, day := datePart(r.Date), Day(today)
	switch {
	case d == day:
		return StatusToday
	case d > day:
		return StatusUpcoming
	}
	return StatusPast
}

// AgendaFilter narrows events and reminders by period and category.
type AgendaFilter struct {
	Range    DateRange
	Category string
}

// FilterEvents keeps events overlapping the range.
func FilterEvents(events []models.Event, f AgendaFilter, today time.Time) []models.Event {
	from, to, bounded := f.Range.Bounds(today)
	out := []models.Event{}
	for _, e := range events {
		if !isAll(f.Category) && e.Category != f.Category {
			continue
		}
		if bounded && (datePart(e.StartDate) > to || eventEnd(e) < from) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterReminders keeps reminders dated inside the range.
func FilterReminders(reminders []models.Reminder, f AgendaFilter, today time.Time) []models.Reminder {
	from, to, bounded := f.Range.Bounds(today)
	out := []models.Reminder{}
	for _, r := range reminders {
		if !isAll(f.Category) && r.Category != f.Category {
			continue
		}
		d := datePart(r.Date)
		if bounded && (d < from || d > to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Counts per bucket plus the total.
type Counts struct {
	Past     int `json:"passados"`
	Today    int `json:"hoje"`
	Upcoming int `json:"proximos"`
	Total    int `json:"total"`
}

type EventBuckets struct {
	Past     []models.Event `json:"passados"`
	Today    []models.Event `json:"hoje"`
	Upcoming []models.Event `json:"proximos"`
	Counts   Counts         `json:"contagem"`
}

// PartitionEvents splits events by status, ordered by start date. In-progress
// events are listed with today's.
func PartitionEvents(events []models.Event, today time.Time) EventBuckets {
	sorted := append([]models.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return datePart(sorted[i].StartDate) < datePart(sorted[j].StartDate)
	})

	b := EventBuckets{Past: []models.Event{}, Today: []models.Event{}, Upcoming: []models.Event{}}
	for _, e := range sorted {
		switch EventStatusOf(e, today) {
		case StatusPast:
			b.Past = append(b.Past, e)
		case StatusUpcoming:
			b.Upcoming = append(b.Upcoming, e)
		default:
			b.Today = append(b.Today, e)
		}
	}
	b.Counts = Counts{Past: len(b.Past), Today: len(b.Today), Upcoming: len(b.Upcoming), Total: len(events)}
	return b
}

type ReminderBuckets struct {
	Past     []models.Reminder `json:"passados"`
	Today    []models.Reminder `json:"hoje"`
	Upcoming []models.Reminder `json:"proximos"`
	Counts   Counts            `json:"contagem"`
}

func reminderKey(r models.Reminder) string {
	return datePart(r.Date) + " " + r.Time
}

// PartitionReminders orders today's and upcoming reminders by date and time,
// past ones newest first.
func PartitionReminders(reminders []models.Reminder, today time.Time) ReminderBuckets {
	b := ReminderBuckets{Past: []models.Reminder{}, Today: []models.Reminder{}, Upcoming: []models.Reminder{}}
	for _, r := range reminders {
		switch ReminderStatusOf(r, today) {
		case StatusPast:
			b.Past = append(b.Past, r)
		case StatusToday:
			b.Today = append(b.Today, r)
		default:
			b.Upcoming = append(b.Upcoming, r)
		}
	}
	byMoment := func(xs []models.Reminder) {
		sort.SliceStable(xs, func(i, j int) bool { return reminderKey(xs[i]) < reminderKey(xs[j]) })
	}
	byMoment(b.Today)
	byMoment(b.Upcoming)
	sort.SliceStable(b.Past, func(i, j int) bool { return datePart(b.Past[i].Date) > datePart(b.Past[j].Date) })

	b.Counts = Counts{Past: len(b.Past), Today: len(b.Today), Upcoming: len(b.Upcoming), Total: len(reminders)}
	return b
}

// EventsOn returns events starting or ending on date.
func EventsOn(events []models.Event, date string) []models.Event {
	out := []models.Event{}
	for _, e := range events {
		if datePart(e.StartDate) == date || (e.EndDate != "" && datePart(e.EndDate) == date) {
			out = append(out, e)
		}
	}
	return out
}

// EventCategories lists distinct event categories in first-seen order.
func EventCategories(events []models.Event) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, e := range events {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	return out
}
