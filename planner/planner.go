package planner

import (
	"fmt"
	"sort"
	"time"

	"lagoon/models"
)

// Details is the trip metadata edited alongside the itinerary.
type Details struct {
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Travelers int     `json:"travelers"`
	Budget    float64 `json:"budget"`
}

// Plan is the in-memory itinerary: trip metadata, the placed items, and the
// day tab currently selected in the builder. All transitions are total
// functions; nothing here touches the database.
type Plan struct {
	Details     Details                `json:"details"`
	Items       []models.ItineraryItem `json:"items"`
	SelectedDay int                    `json:"selected_day"`
}

func NewPlan() *Plan {
	return &Plan{
		Details:     Details{Travelers: 1},
		Items:       []models.ItineraryItem{},
		SelectedDay: 1,
	}
}

// NewItemID embeds the catalog entry's external id plus a timestamp suffix so
// the same entry can be added more than once.
func NewItemID(externalID string) string {
	return fmt.Sprintf("%s-%d", externalID, time.Now().UnixMilli())
}

// AddItem clones a catalog candidate into the plan on the given day with a
// freshly generated id. No de-duplication.
func (p *Plan) AddItem(candidate models.ItineraryItem, day int) models.ItineraryItem {
	item := candidate
	item.ItemID = NewItemID(candidate.ExternalID)
	item.Day = day
	item.SortOrder = len(p.Items)
	p.Items = append(p.Items, item)
	return item
}

// RemoveItem deletes by id. Unknown ids are a no-op.
func (p *Plan) RemoveItem(id string) {
	for i := range p.Items {
		if p.Items[i].ItemID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return
		}
	}
}

// MoveItem reassigns an item's day. A move past the current day count is
// allowed; the day count expands through the max-item-day rule.
func (p *Plan) MoveItem(id string, newDay int) {
	for i := range p.Items {
		if p.Items[i].ItemID == id {
			p.Items[i].Day = newDay
			return
		}
	}
}

// AddDay advances the selected-day pointer past the last derived day. No item
// is created; the empty day keeps a visible slot via VisibleDays.
func (p *Plan) AddDay() {
	p.SelectedDay = p.TotalDays() + 1
}

// SelectDay moves the day pointer without changing any item.
func (p *Plan) SelectDay(day int) {
	if day < 1 {
		day = 1
	}
	p.SelectedDay = day
}

// SetDetails replaces the trip metadata.
func (p *Plan) SetDetails(d Details) {
	p.Details = d
}

// ItemsForDay returns the items placed on a day, stably ordered by their
// "HH:MM" time string (lexicographic, not a chronological parse).
func (p *Plan) ItemsForDay(day int) []models.ItineraryItem {
	out := []models.ItineraryItem{}
	for _, it := range p.Items {
		if it.Day == day {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func (p *Plan) maxItemDay() int {
	max := 0
	for _, it := range p.Items {
		if it.Day > max {
			max = it.Day
		}
	}
	return max
}

// TotalDays derives the trip length: the larger of the inclusive date span
// and the highest day an item occupies, never less than 1. An invalid or
// partial date range silently falls back to the item-derived count.
func (p *Plan) TotalDays() int {
	days := 1
	if span, ok := dateSpanDays(p.Details.StartDate, p.Details.EndDate); ok {
		days = span
	}
	if m := p.maxItemDay(); m > days {
		days = m
	}
	return days
}

// VisibleDays lists every day tab the builder must render: days 1..TotalDays
// always have a slot, plus the selected day when it sits past the last
// occupied one.
func (p *Plan) VisibleDays() []int {
	last := p.TotalDays()
	if p.SelectedDay > last {
		last = p.SelectedDay
	}
	days := make([]int, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, d)
	}
	return days
}

// TotalCost sums item prices. The trip budget is never enforced against it.
func (p *Plan) TotalCost() float64 {
	var sum float64
	for _, it := range p.Items {
		sum += it.Price
	}
	return sum
}
