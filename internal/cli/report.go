package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
)

var (
	accentColor  = lipgloss.Color("#2E5C8A")
	subtleColor  = lipgloss.Color("#666666")
	warningColor = lipgloss.Color("#FFB347")
	errorColor   = lipgloss.Color("#E4572E")
	successColor = lipgloss.Color("#4ECDC4")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Width(30)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(errorColor),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(warningColor),
		model.PriorityLow:    lipgloss.NewStyle().Foreground(successColor),
	}
)

var printer = message.NewPrinter(language.AmericanEnglish)

// money formats an amount as US dollars with grouped thousands, e.g. -$1,234.50.
func money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + printer.Sprintf("%d", d.Truncate(0).IntPart()) + cents
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func renderEstimate(est *model.Estimate) string {
	var b strings.Builder
	s := est.Snapshot

	b.WriteString(titleStyle.Render("Monthly Benefits Estimate"))
	b.WriteString("\n")

	lines := []string{
		row("VA disability compensation", valueStyle.Render(money(s.VAMonthlyBenefit))),
		row("Military retired pay", valueStyle.Render(money(s.MilitaryRetirementPension))),
		row("Total income", valueStyle.Render(money(s.TotalIncome))),
		row("Total expenses", valueStyle.Render(money(s.TotalExpenses))),
	}
	net := valueStyle.Render(money(s.NetIncome))
	if s.NetIncome.IsNegative() {
		net = negativeStyle.Render(money(s.NetIncome))
	}
	lines = append(lines, row("Net income", net), row("Savings rate", percent(s.SavingsRate)))
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	if len(s.ExpenseBreakdown) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Expenses") + "\n")
		for _, c := range s.ExpenseBreakdown {
			b.WriteString(row("  "+c.Category, fmt.Sprintf("%s  %s", money(c.Amount), subtleStyle.Render(percent(c.Share)))))
			b.WriteString("\n")
		}
	}

	if len(est.Messages) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Input adjustments") + "\n")
		for _, m := range est.Messages {
			b.WriteString(warningStyle.Render("  ! "+m.Message) + "\n")
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Recommendations") + "\n")
	if len(est.Recommendations) == 0 {
		b.WriteString(subtleStyle.Render("  Nothing to recommend.") + "\n")
	}
	for i, r := range est.Recommendations {
		tag := priorityStyles[r.Priority].Render(strings.ToUpper(string(r.Priority)))
		fmt.Fprintf(&b, "%2d. [%s] %s", i+1, tag, valueStyle.Render(r.Title))
		if r.PotentialSavings.IsPositive() {
			fmt.Fprintf(&b, " (up to %s/mo)", money(r.PotentialSavings))
		}
		b.WriteString("\n")
		b.WriteString("    " + r.Description + "\n")
		b.WriteString(subtleStyle.Render("    -> "+r.Action) + "\n")
	}

	return b.String()
}

func renderComparison(cmp *model.Comparison) string {
	var b strings.Builder
	base, next := cmp.Baseline.Snapshot, cmp.Scenario.Snapshot

	b.WriteString(titleStyle.Render("What-if Comparison"))
	b.WriteString("\n")

	compareRow := func(label string, from, to decimal.Decimal) string {
		delta := to.Sub(from)
		change := subtleStyle.Render("no change")
		if !delta.IsZero() {
			sign := "+"
			style := valueStyle
			if delta.IsNegative() {
				sign = ""
				style = negativeStyle
			}
			change = style.Render(sign + money(delta))
		}
		return row(label, fmt.Sprintf("%s -> %s  %s", money(from), money(to), change))
	}

	lines := []string{
		compareRow("VA disability compensation", base.VAMonthlyBenefit, next.VAMonthlyBenefit),
		compareRow("Military retired pay", base.MilitaryRetirementPension, next.MilitaryRetirementPension),
		compareRow("Total income", base.TotalIncome, next.TotalIncome),
		compareRow("Total expenses", base.TotalExpenses, next.TotalExpenses),
		compareRow("Net income", base.NetIncome, next.NetIncome),
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	if len(cmp.AddedRecommendations) > 0 {
		b.WriteString("\n" + sectionStyle.Render("New recommendations") + "\n")
		for _, t := range cmp.AddedRecommendations {
			b.WriteString("  + " + t + "\n")
		}
	}
	if len(cmp.RemovedRecommendations) > 0 {
		b.WriteString("\n" + sectionStyle.Render("No longer recommended") + "\n")
		for _, t := range cmp.RemovedRecommendations {
			b.WriteString("  - " + t + "\n")
		}
	}

	return b.String()
}

func renderTables(t *ratetable.Table) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("VA Disability Compensation (monthly)"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-8s %12s %14s %12s\n", "Rating", "Single", "With spouse", "Per child")
	for _, rating := range t.Ratings() {
		r, _ := t.VARate(rating)
		fmt.Fprintf(&b, "%-8s %12s %14s %12s\n",
			fmt.Sprintf("%d%%", rating), money(r.Single), money(r.WithSpouse), money(r.PerChild))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Military Base Pay (monthly)"))
	b.WriteString("\n")
	brackets := ratetable.Brackets()
	fmt.Fprintf(&b, "%-6s", "Grade")
	for i := len(brackets) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " %12s", fmt.Sprintf("%d yrs", brackets[i]))
	}
	b.WriteString("\n")
	for _, rank := range t.Ranks() {
		fmt.Fprintf(&b, "%-6s", rank)
		for i := len(brackets) - 1; i >= 0; i-- {
			cell := "-"
			if pay, ok := t.BasePay(rank, brackets[i]); ok {
				cell = money(pay)
			}
			fmt.Fprintf(&b, " %12s", cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}
