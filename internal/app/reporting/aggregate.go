package reporting

import (
	"sort"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

// Targets are revenue goals per period, in shop currency.
type Targets struct {
	Daily  float64 `yaml:"daily"`
	Weekly float64 `yaml:"weekly"`
	Yearly float64 `yaml:"yearly"`
}

func (t Targets) For(p domain.Period) float64 {
	switch p {
	case domain.PeriodDaily:
		return t.Daily
	case domain.PeriodWeekly:
		return t.Weekly
	default:
		return t.Yearly
	}
}

// Thresholds are percentage boundaries for the verdict.
type Thresholds struct {
	Excellent float64 `yaml:"excellent"`
	Good      float64 `yaml:"good"`
}

func DefaultTargets() Targets {
	return Targets{Daily: 5000, Weekly: 35000, Yearly: 1500000}
}

func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 100, Good: 75}
}

type itemKey struct {
	itemID  string
	variant string
}

// AggregateItems groups non-cancelled order lines by item and variant and
// sorts the rows by total sales, highest first. Ties keep first-seen order.
func AggregateItems(orders []*domain.Order) []domain.ItemSales {
	index := make(map[itemKey]int)
	var rows []domain.ItemSales

	for _, o := range orders {
		if o.Status == domain.StatusCancelled {
			continue
		}
		for _, line := range o.Items {
			key := itemKey{itemID: line.Item.ID, variant: line.VariantName()}
			i, ok := index[key]
			if !ok {
				name := line.Item.Name
				if key.variant != "" {
					name += " (" + key.variant + ")"
				}
				rows = append(rows, domain.ItemSales{
					ItemID:   key.itemID,
					Variant:  key.variant,
					Name:     name,
					Category: line.Item.Category,
				})
				i = len(rows) - 1
				index[key] = i
			}
			rows[i].Quantity += line.Quantity
			rows[i].Total += line.LineTotal()
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Total > rows[b].Total
	})
	return rows
}

// Revenue sums totals of non-cancelled orders.
func Revenue(orders []*domain.Order) float64 {
	sum := 0.0
	for _, o := range orders {
		if o.Status != domain.StatusCancelled {
			sum += o.Total
		}
	}
	return sum
}

// Valid drops cancelled orders.
func Valid(orders []*domain.Order) []*domain.Order {
	out := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != domain.StatusCancelled {
			out = append(out, o)
		}
	}
	return out
}

// Evaluate computes the performance of current against target. A target of
// zero or less always counts as met.
func Evaluate(current, target float64, th Thresholds) domain.Performance {
	p := domain.Performance{Current: current, Target: target}
	if target <= 0 {
		p.Percentage = 100
		p.Verdict = domain.VerdictExcellent
		return p
	}

	p.Percentage = current / target * 100
	switch {
	case p.Percentage >= th.Excellent:
		p.Verdict = domain.VerdictExcellent
	case p.Percentage >= th.Good:
		p.Verdict = domain.VerdictGood
	default:
		p.Verdict = domain.VerdictNeedsImprovement
	}
	return p
}

// Verdict uses the default thresholds.
func Verdict(current, target float64) domain.Verdict {
	return Evaluate(current, target, DefaultThresholds()).Verdict
}

// FilterByPeriod keeps orders in the reporting window ending at now. Daily
// and yearly windows are calendar based in now's location; weekly is a
// rolling seven days.
func FilterByPeriod(orders []*domain.Order, period domain.Period, now time.Time) []*domain.Order {
	loc := now.Location()
	y, m, d := now.Date()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	out := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		at := o.CreatedAt.In(loc)
		var keep bool
		switch period {
		case domain.PeriodDaily:
			oy, om, od := at.Date()
			keep = oy == y && om == m && od == d
		case domain.PeriodWeekly:
			keep = !at.Before(weekAgo)
		case domain.PeriodYearly:
			keep = at.Year() == y
		}
		if keep {
			out = append(out, o)
		}
	}
	return out
}
