// Package prices resolves point-in-time security and currency prices
// from the recorded price history of a KMyMoney file.
package prices

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneylens-dev/moneylens/internal/fraction"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// MaxDate is the open upper bound for the newest recorded price of a
// pair, mirroring the '9000-01-01' sentinel KMyMoney reports use.
var MaxDate = time.Date(9000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Point is one recorded price together with its validity window
// [Date, Until). Until is the next recorded date for the same
// from-currency, or MaxDate when the point is the newest.
type Point struct {
	FromID string
	Date   time.Time
	Until  time.Time
	Value  decimal.Decimal
}

// History indexes all recorded prices quoted in a single target
// currency, per from-currency, by date.
type History struct {
	byFrom map[string][]Point
}

// NewHistory decodes and indexes price rows. Rows quoted in another
// currency or with undecodable price fractions are skipped.
func NewHistory(rows []model.Price, toCurrency string) *History {
	byFrom := make(map[string][]Point)
	for _, p := range rows {
		if p.ToID != toCurrency {
			continue
		}
		v := fraction.Decode(p.Value)
		if !v.Valid {
			continue
		}
		byFrom[p.FromID] = append(byFrom[p.FromID], Point{
			FromID: p.FromID,
			Date:   p.Date,
			Value:  v.Decimal,
		})
	}
	for fromID, points := range byFrom {
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		for i := range points {
			if i+1 < len(points) {
				points[i].Until = points[i+1].Date
			} else {
				points[i].Until = MaxDate
			}
		}
		byFrom[fromID] = points
	}
	return &History{byFrom: byFrom}
}

// At returns the price of one unit of currency on the given date,
// i.e. the point whose validity window contains the date. The second
// result is false when no price had been recorded yet.
func (h *History) At(currency string, date time.Time) (decimal.Decimal, bool) {
	points := h.byFrom[currency]
	// First point dated after `date`; the one before it, if any, is
	// the point in effect.
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Date.After(date)
	})
	if i == 0 {
		return decimal.Decimal{}, false
	}
	return points[i-1].Value, true
}

// All returns every indexed point ordered by from-currency and date.
func (h *History) All() []Point {
	froms := make([]string, 0, len(h.byFrom))
	for fromID := range h.byFrom {
		froms = append(froms, fromID)
	}
	sort.Strings(froms)

	var out []Point
	for _, fromID := range froms {
		out = append(out, h.byFrom[fromID]...)
	}
	return out
}
