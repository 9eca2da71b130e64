package domain

import (
	"fmt"
	"strings"
)

type Period string

const (
	PeriodDaily  Period = "Daily"
	PeriodWeekly Period = "Weekly"
	PeriodYearly Period = "Yearly"
)

// ParsePeriod is case-insensitive: "daily", "Daily" and "DAILY" all work.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "daily":
		return PeriodDaily, nil
	case "weekly":
		return PeriodWeekly, nil
	case "yearly":
		return PeriodYearly, nil
	}
	return "", fmt.Errorf("unknown report period %q", s)
}

type Verdict string

const (
	VerdictExcellent        Verdict = "Excellent"
	VerdictGood             Verdict = "Good"
	VerdictNeedsImprovement Verdict = "Needs Improvement"
)

// ItemSales is one row of the per-item breakdown
type ItemSales struct {
	ItemID   string   `json:"itemId"`
	Variant  string   `json:"variant,omitempty"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity int      `json:"quantity"`
	Total    float64  `json:"total"`
}

type Performance struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Verdict    Verdict `json:"verdict"`
}

// Dashboard is the back-office summary
type Dashboard struct {
	TotalRevenue    float64     `json:"totalRevenue"`
	TotalOrders     int         `json:"totalOrders"`
	CompletedOrders int         `json:"completedOrders"`
	CancelledOrders int         `json:"cancelledOrders"`
	TodayRevenue    float64     `json:"todayRevenue"`
	Daily           Performance `json:"daily"`
	Items           []ItemSales `json:"items"`
}

// Report is a rendered export document
type Report struct {
	Period      Period
	Filename    string
	ContentType string
	Body        []byte
}
