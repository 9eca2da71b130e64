package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

const (
	defaultWidth    = 32
	timestampLayout = "2006-01-02 15:04:05"
	cutLine         = "- - - - - CUT HERE - - - - -"
)

// Layout describes the paper and the shop header printed on every copy.
type Layout struct {
	ShopName string
	Tagline  string
	Currency string
	Width    int
}

func (l Layout) width() int {
	if l.Width <= 0 {
		return defaultWidth
	}
	return l.Width
}

func (l Layout) money(v float64) string {
	return fmt.Sprintf("%s%.2f", l.Currency, v)
}

// Render returns the customer copy, the cut line and the shop copy.
func Render(l Layout, o *domain.Order) string {
	var b strings.Builder
	b.WriteString(CustomerCopy(l, o))
	b.WriteString("\n")
	b.WriteString(center(cutLine, l.width()))
	b.WriteString("\n\n")
	b.WriteString(ShopCopy(l, o))
	return b.String()
}

func CustomerCopy(l Layout, o *domain.Order) string {
	w := l.width()
	var b strings.Builder

	writeLine(&b, center(l.ShopName, w))
	if l.Tagline != "" {
		writeLine(&b, center(l.Tagline, w))
	}
	writeLine(&b, center("CUSTOMER COPY", w))
	writeLine(&b, spread("Order #:", orderNumber(o), w))
	writeLine(&b, o.CreatedAt.Format(timestampLayout))
	if o.CustomerName != "" {
		writeLine(&b, "Customer: "+o.CustomerName)
	}

	writeItems(&b, l, o)
	writeLine(&b, "")
	writeLine(&b, center("Thank you for your support!", w))
	return b.String()
}

// ShopCopy is the ticket kept by the counter and shown on the kitchen display.
func ShopCopy(l Layout, o *domain.Order) string {
	w := l.width()
	var b strings.Builder

	writeLine(&b, center(l.ShopName, w))
	writeLine(&b, center("SHOP COPY", w))
	writeLine(&b, spread("Order #:", orderNumber(o), w))
	writeLine(&b, o.CreatedAt.Format(timestampLayout))
	if o.CustomerName != "" {
		writeLine(&b, "NAME: "+o.CustomerName)
	}

	writeItems(&b, l, o)
	return b.String()
}

func writeItems(b *strings.Builder, l Layout, o *domain.Order) {
	w := l.width()

	writeLine(b, strings.Repeat("-", w))
	for _, line := range o.Items {
		writeLine(b, spread(fmt.Sprintf("%dx %s", line.Quantity, line.Item.Name), l.money(line.LineTotal()), w))
		if v := line.VariantName(); v != "" {
			writeLine(b, "  - "+v)
		}
	}
	writeLine(b, strings.Repeat("=", w))
	writeLine(b, spread("TOTAL", l.money(o.Total), w))
}

func orderNumber(o *domain.Order) string {
	return fmt.Sprintf("%03d", o.Number)
}

func writeLine(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteString("\n")
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

// spread puts left and right on one line, padded to width. Text too long for
// the paper keeps a single separating space.
func spread(left, right string, width int) string {
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
