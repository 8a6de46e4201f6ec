package date

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range starting on 'from' and spanning 'days' more days.
func NewRange(from Date, days int) Range {
	return Range{From: from, To: from.Add(days)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.From.DaysUntil(r.To) + 1
}
