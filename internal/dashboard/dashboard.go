// Package dashboard derives KPIs and chart series from the cached delivery list.
// Everything is recomputed from the full filtered set on each call.
package dashboard

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"logistics-backoffice/internal/domain"
)

const (
	unassigned = "Não atribuído"
	noState    = "N/A"

	topStates   = 8
	topCouriers = 5
)

var monthAbbr = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Filter narrows the deliveries that feed the report. Nil fields do not filter.
// Date bounds are inclusive and compared at day precision.
type Filter struct {
	From      *time.Time
	To        *time.Time
	CourierID *int64
}

// Match reports whether d passes the filter.
func (f Filter) Match(d domain.Delivery) bool {
	day := dateOf(d.OrderDate)
	if f.From != nil && day.Before(dateOf(*f.From)) {
		return false
	}
	if f.To != nil && day.After(dateOf(*f.To)) {
		return false
	}
	if f.CourierID != nil && d.CourierID != *f.CourierID {
		return false
	}
	return true
}

// Apply returns the deliveries passing the filter, in input order.
func (f Filter) Apply(ds []domain.Delivery) []domain.Delivery {
	out := make([]domain.Delivery, 0, len(ds))
	for _, d := range ds {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// KPIs are the headline numbers.
type KPIs struct {
	Total          int     `json:"total"`
	Delivered      int     `json:"delivered"`
	Problem        int     `json:"problem"`
	Pending        int     `json:"pending"`
	Late           int     `json:"late"`
	RevenueTotal   float64 `json:"revenue_total"`
	RevenueDone    float64 `json:"revenue_realized"`
	RevenuePending float64 `json:"revenue_pending"`
	SuccessRate    float64 `json:"success_rate"`
	AverageTicket  float64 `json:"average_ticket"`
	Customers      int     `json:"customers"`
	Couriers       int     `json:"couriers"`
}

// StatusCount is one bar of the status histogram.
type StatusCount struct {
	Status domain.DeliveryStatus `json:"status"`
	Label  string                `json:"label"`
	Total  int                   `json:"total"`
}

// NamedCount is a label with a count.
type NamedCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// MonthPoint is one month of the time series.
type MonthPoint struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Deliveries int     `json:"deliveries"`
	Revenue    float64 `json:"revenue"`
}

// CourierStats is one row of the courier leaderboard.
type CourierStats struct {
	CourierID   int64   `json:"courier_id"`
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Delivered   int     `json:"delivered"`
	SuccessRate float64 `json:"success_rate"`
	Revenue     float64 `json:"revenue"`
}

// Report is the full dashboard payload.
type Report struct {
	KPIs        KPIs           `json:"kpis"`
	ByStatus    []StatusCount  `json:"by_status"`
	ByCourier   []NamedCount   `json:"by_courier"`
	ByMonth     []MonthPoint   `json:"by_month"`
	ByState     []NamedCount   `json:"by_state"`
	TopCouriers []CourierStats `json:"top_couriers"`
}

// Compute builds the report for the deliveries passing f. customers and
// couriers are the unfiltered entity counts.
func Compute(ds []domain.Delivery, customers, couriers int, f Filter, now time.Time) Report {
	set := f.Apply(ds)
	return Report{
		KPIs:        kpis(set, customers, couriers, now),
		ByStatus:    byStatus(set),
		ByCourier:   byCourier(set),
		ByMonth:     byMonth(set),
		ByState:     byState(set),
		TopCouriers: topCourierStats(set),
	}
}

func kpis(set []domain.Delivery, customers, couriers int, now time.Time) KPIs {
	k := KPIs{Total: len(set), Customers: customers, Couriers: couriers}
	for i := range set {
		d := &set[i]
		k.RevenueTotal += d.Value
		switch {
		case d.Status == domain.StatusDelivered:
			k.Delivered++
			k.RevenueDone += d.Value
		case d.Status.IsProblem():
			k.Problem++
		default:
			k.Pending++
		}
		if d.DeadlineStatus(now) == domain.DeadlineLate {
			k.Late++
		}
	}
	k.RevenuePending = k.RevenueTotal - k.RevenueDone
	k.SuccessRate = percent(k.Delivered, k.Total)
	if k.Total > 0 {
		k.AverageTicket = k.RevenueTotal / float64(k.Total)
	}
	return k
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func byStatus(set []domain.Delivery) []StatusCount {
	counts := make(map[domain.DeliveryStatus]int)
	for _, d := range set {
		counts[d.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for _, s := range domain.DeliveryStatuses() {
		if n := counts[s]; n > 0 {
			out = append(out, StatusCount{Status: s, Label: s.Label(), Total: n})
			delete(counts, s)
		}
	}
	rest := make([]StatusCount, 0, len(counts))
	for s, n := range counts {
		rest = append(rest, StatusCount{Status: s, Label: s.Label(), Total: n})
	}
	slices.SortFunc(rest, func(a, b StatusCount) int { return cmp.Compare(a.Status, b.Status) })
	return append(out, rest...)
}

func courierName(d domain.Delivery) string {
	if d.CourierName == "" {
		return unassigned
	}
	return d.CourierName
}

func byCourier(set []domain.Delivery) []NamedCount {
	counts := make(map[string]int)
	for _, d := range set {
		counts[courierName(d)]++
	}
	return sortedCounts(counts)
}

func byState(set []domain.Delivery) []NamedCount {
	counts := make(map[string]int)
	for _, d := range set {
		uf := d.CustomerState
		if uf == "" {
			uf = noState
		}
		counts[uf]++
	}
	out := sortedCounts(counts)
	if len(out) > topStates {
		out = out[:topStates]
	}
	return out
}

// sortedCounts orders by count descending, then name.
func sortedCounts(counts map[string]int) []NamedCount {
	out := make([]NamedCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, NamedCount{Name: name, Total: n})
	}
	slices.SortFunc(out, func(a, b NamedCount) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return monthAbbr[t.Month()-1] + "/" + strconv.Itoa(t.Year()%100)
}

func byMonth(set []domain.Delivery) []MonthPoint {
	idx := make(map[string]int)
	var out []MonthPoint
	for _, d := range set {
		key := monthKey(d.OrderDate)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, MonthPoint{Key: key, Label: monthLabel(key)})
		}
		out[i].Deliveries++
		out[i].Revenue += d.Value
	}
	slices.SortFunc(out, func(a, b MonthPoint) int {
		ta, _ := time.Parse("2006-01", a.Key)
		tb, _ := time.Parse("2006-01", b.Key)
		return ta.Compare(tb)
	})
	if out == nil {
		out = []MonthPoint{}
	}
	return out
}

func topCourierStats(set []domain.Delivery) []CourierStats {
	idx := make(map[int64]int)
	var out []CourierStats
	for _, d := range set {
		i, ok := idx[d.CourierID]
		if !ok {
			i = len(out)
			idx[d.CourierID] = i
			out = append(out, CourierStats{CourierID: d.CourierID, Name: courierName(d)})
		}
		out[i].Total++
		out[i].Revenue += d.Value
		if d.Status == domain.StatusDelivered {
			out[i].Delivered++
		}
	}
	for i := range out {
		out[i].SuccessRate = percent(out[i].Delivered, out[i].Total)
	}
	slices.SortStableFunc(out, func(a, b CourierStats) int { return cmp.Compare(b.Total, a.Total) })
	if len(out) > topCouriers {
		out = out[:topCouriers]
	}
	if out == nil {
		out = []CourierStats{}
	}
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
