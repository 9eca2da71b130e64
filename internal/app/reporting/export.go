package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

const (
	csvContentType     = "text/csv; charset=utf-8"
	generatedOnLayout  = "2006-01-02 15:04:05"
	orderDateLayout    = "2006-01-02"
	orderTimeLayout    = "15:04:05"
	filenameDateLayout = "2006-01-02"
)

// ExportReport renders the sales report for one period. Cancelled orders are
// left out of every section.
func ExportReport(title string, period domain.Period, orders []*domain.Order, now time.Time, targets Targets, th Thresholds) domain.Report {
	inPeriod := FilterByPeriod(Valid(orders), period, now)
	revenue := Revenue(inPeriod)
	target := targets.For(period)
	perf := Evaluate(revenue, target, th)

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s Sales Report\n", title, period)
	fmt.Fprintf(&b, "Generated on,%s\n\n", now.Format(generatedOnLayout))

	b.WriteString("Order #,Date,Time,Customer,Items,Total Amount,Status\n")
	loc := now.Location()
	for _, o := range inPeriod {
		at := o.CreatedAt.In(loc)
		fmt.Fprintf(&b, "%d,%s,%s,\"%s\",\"%s\",%.2f,%s\n",
			o.Number,
			at.Format(orderDateLayout),
			at.Format(orderTimeLayout),
			quoteEscape(o.DisplayName()),
			quoteEscape(itemSummary(o.Items)),
			o.Total,
			o.Status,
		)
	}

	b.WriteString("\nSUMMARY STATISTICS\n")
	fmt.Fprintf(&b, "Total Orders,%d\n", len(inPeriod))
	fmt.Fprintf(&b, "Total Revenue,%.2f\n", revenue)
	fmt.Fprintf(&b, "Target Revenue,%.2f\n", target)
	fmt.Fprintf(&b, "Performance Verdict,%s\n", perf.Verdict)

	b.WriteString("\nITEM SALES BREAKDOWN\n")
	b.WriteString("Item Name,Category,Quantity Sold,Total Sales\n")
	for _, row := range AggregateItems(inPeriod) {
		fmt.Fprintf(&b, "\"%s\",%s,%d,%.2f\n", quoteEscape(row.Name), row.Category, row.Quantity, row.Total)
	}

	return domain.Report{
		Period:      period,
		Filename:    Filename(period, now),
		ContentType: csvContentType,
		Body:        []byte(b.String()),
	}
}

func Filename(period domain.Period, now time.Time) string {
	return fmt.Sprintf("sales-report-%s-%s.csv", strings.ToLower(string(period)), now.Format(filenameDateLayout))
}

func itemSummary(lines []domain.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%dx %s", l.Quantity, l.Item.Name))
	}
	return strings.Join(parts, "; ")
}

func quoteEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
