package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scoopctl/scoopctl/internal/domain"
)

// ── warm parlor palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 3).
			Align(lipgloss.Center).
			Width(50)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	missingStyle  = lipgloss.NewStyle().Foreground(danger)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 44))

	statusStyles = map[string]lipgloss.Style{
		domain.StatusPending:   lipgloss.NewStyle().Foreground(warning),
		domain.StatusPreparing: lipgloss.NewStyle().Foreground(accent),
		domain.StatusReady:     lipgloss.NewStyle().Foreground(success),
		domain.StatusCompleted: lipgloss.NewStyle().Foreground(dim),
	}
)

var categoryTitles = map[domain.Category]string{
	domain.CategoryFlavor:    "FLAVORS",
	domain.CategoryTopping:   "TOPPINGS",
	domain.CategoryContainer: "CONTAINERS",
}

// RenderMenu renders the full catalog grouped by category.
func RenderMenu(shopName string, items []*domain.MenuItem, currency string) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render(shopName) + "\n" + dimStyle.Render("Menu")))
	b.WriteString("\n")

	for _, cat := range domain.Categories {
		b.WriteString("\n  " + categoryStyle.Render(categoryTitles[cat]) + "\n")
		for _, item := range items {
			if item.Category != cat {
				continue
			}
			b.WriteString(fmt.Sprintf("    %s  %s %s\n",
				dimStyle.Render(item.ItemID),
				item.Name,
				dimStyle.Render(money(currency, item.Price)),
			))
		}
	}

	return b.String()
}

// RenderOrderList renders one summary line per order in insertion order.
func RenderOrderList(orders []*domain.Order, currency string) string {
	if len(orders) == 0 {
		return dimStyle.Render("No orders found.") + "\n"
	}

	var b strings.Builder
	for _, o := range orders {
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			titleStyle.Render(o.OrderID),
			dimStyle.Render("customer "+o.CustomerID),
			renderStatus(o.Status),
			money(currency, o.TotalAmount),
		))
	}
	return b.String()
}

// RenderOrderDetails renders the resolved view of one order. An order
// whose customer did not resolve shows the "Unknown" placeholder; cart
// lines that did not resolve in the catalog are not listed.
func RenderOrderDetails(d *domain.OrderDetails, currency string) string {
	var b strings.Builder
	o := d.Order

	customer := d.CustomerName
	if customer == "" {
		customer = "Unknown"
	}

	b.WriteString("\n  " + titleStyle.Render("Order #"+o.OrderID) + "\n")
	b.WriteString("  " + dimStyle.Render("Customer:") + " " + customer + "\n")
	b.WriteString("  " + dimStyle.Render("Date:") + "     " + o.OrderDate + "\n")
	b.WriteString("  " + dimStyle.Render("Status:") + "   " + renderStatus(o.Status) + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, line := range d.Lines {
		b.WriteString(fmt.Sprintf("    %s x%d  %s\n",
			line.Name, line.Quantity, money(currency, line.LineTotal)))
	}
	b.WriteString("  " + separatorLine + "\n")
	b.WriteString("  " + dimStyle.Render("Total:") + "    " + totalStyle.Render(money(currency, o.TotalAmount)) + "\n")

	return b.String()
}

// RenderReceipt renders the confirmation shown right after placement.
func RenderReceipt(o *domain.Order, currency string) string {
	body := headerStyle.Render("Order placed") + "\n\n" +
		titleStyle.Render(o.OrderID) + "\n" +
		dimStyle.Render("Total ") + totalStyle.Render(money(currency, o.TotalAmount))
	return boxStyle.Render(body) + "\n"
}

// RenderCustomers renders the customer registry with history counts.
func RenderCustomers(customers []*domain.Customer) string {
	if len(customers) == 0 {
		return dimStyle.Render("No customers found.") + "\n"
	}

	var b strings.Builder
	for _, c := range customers {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			titleStyle.Render(c.CustomerID),
			c.Name,
			dimStyle.Render(fmt.Sprintf("%d orders", len(c.OrderHistory))),
		))
	}
	return b.String()
}

// RenderCustomerDetails renders one customer and their order history.
func RenderCustomerDetails(c *domain.Customer) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(c.Name) + "  " + dimStyle.Render(c.CustomerID) + "\n")
	if len(c.OrderHistory) == 0 {
		b.WriteString("  " + dimStyle.Render("No orders yet.") + "\n")
		return b.String()
	}
	for _, orderID := range c.OrderHistory {
		b.WriteString("    " + orderID + "\n")
	}
	return b.String()
}

// RenderNotFound renders the standard not-found message for an entity.
func RenderNotFound(what string) string {
	return missingStyle.Render(what+" not found!") + "\n"
}

// RenderAuditLog renders change-journal entries, newest first.
func RenderAuditLog(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("Journal is empty.") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		hash := e.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			faintStyle.Render(hash),
			dimStyle.Render(e.When.Format("2006-01-02 15:04")),
			e.Message,
		))
	}
	return b.String()
}

func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}

func money(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}
