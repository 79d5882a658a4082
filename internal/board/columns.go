// Package board groups deliveries into kanban columns and applies
// drag-and-drop status changes optimistically.
package board

import (
	"strconv"
	"strings"

	"logistics-backoffice/internal/domain"
)

// Column is a fixed kanban bucket.
type Column string

// Board columns in display order.
const (
	ColumnConfirmed Column = "confirmado"
	ColumnReady     Column = "pronto"
	ColumnShipped   Column = "enviado"
	ColumnDelivered Column = "entregue"
	ColumnProblem   Column = "problemas"
)

var columns = [...]Column{ColumnConfirmed, ColumnReady, ColumnShipped, ColumnDelivered, ColumnProblem}

var columnStatus = map[Column]domain.DeliveryStatus{
	ColumnConfirmed: domain.StatusConfirmed,
	ColumnReady:     domain.StatusReadyToShip,
	ColumnShipped:   domain.StatusShipped,
	ColumnDelivered: domain.StatusDelivered,
	ColumnProblem:   domain.StatusDeliveryFailed,
}

var columnTitles = map[Column]string{
	ColumnConfirmed: "Confirmado",
	ColumnReady:     "Pronto",
	ColumnShipped:   "Enviado",
	ColumnDelivered: "Entregue",
	ColumnProblem:   "Problemas",
}

// Columns returns the columns in display order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns[:])
	return out
}

// Status is the delivery status a card takes when dropped on c.
func (c Column) Status() domain.DeliveryStatus { return columnStatus[c] }

// Title is the display name of c.
func (c Column) Title() string { return columnTitles[c] }

// Valid reports whether c is a known column.
func (c Column) Valid() bool {
	_, ok := columnStatus[c]
	return ok
}

// ColumnOf places a status: any problem status goes to Problem, known
// statuses to their own column, anything else to Confirmed.
func ColumnOf(s domain.DeliveryStatus) Column {
	if s.IsProblem() {
		return ColumnProblem
	}
	switch s {
	case domain.StatusReadyToShip:
		return ColumnReady
	case domain.StatusShipped:
		return ColumnShipped
	case domain.StatusDelivered:
		return ColumnDelivered
	default:
		return ColumnConfirmed
	}
}

// Lane is one column with its cards.
type Lane struct {
	Column     Column
	Deliveries []domain.Delivery
}

// Grouped is the board content in column order.
type Grouped []Lane

// Group partitions deliveries into lanes, keeping input order within a lane.
// Every delivery lands in exactly one lane.
func Group(ds []domain.Delivery) Grouped {
	g := make(Grouped, len(columns))
	idx := make(map[Column]int, len(columns))
	for i, c := range columns {
		g[i] = Lane{Column: c, Deliveries: []domain.Delivery{}}
		idx[c] = i
	}
	for _, d := range ds {
		i := idx[ColumnOf(d.Status)]
		g[i].Deliveries = append(g[i].Deliveries, d)
	}
	return g
}

// Find returns the column holding the delivery with the given id.
func (g Grouped) Find(id int64) (Column, bool) {
	for _, lane := range g {
		for _, d := range lane.Deliveries {
			if d.ID == id {
				return lane.Column, true
			}
		}
	}
	return "", false
}

// Len is the total number of cards.
func (g Grouped) Len() int {
	n := 0
	for _, lane := range g {
		n += len(lane.Deliveries)
	}
	return n
}

// ResolveDrop determines the source and destination columns of a drag.
// overID is either a column key, another card's id, or a container id
// that embeds a column key (e.g. "column-enviado").
func ResolveDrop(g Grouped, activeID int64, overID string) (from, to Column, ok bool) {
	from, ok = g.Find(activeID)
	if !ok {
		return "", "", false
	}
	to, ok = resolveTarget(g, strings.TrimSpace(overID))
	if !ok {
		return "", "", false
	}
	return from, to, true
}

func resolveTarget(g Grouped, overID string) (Column, bool) {
	if overID == "" {
		return "", false
	}
	if c := Column(overID); c.Valid() {
		return c, true
	}
	if id, err := strconv.ParseInt(overID, 10, 64); err == nil {
		return g.Find(id)
	}
	for _, c := range columns {
		if strings.Contains(overID, string(c)) {
			return c, true
		}
	}
	return "", false
}
