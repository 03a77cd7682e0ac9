package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/models"
)

const dayKeyLayout = "2006-01-02"

var weekdayLabels = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// WeekdayLabel returns the short Chinese weekday name.
func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

// DayKey is the calendar date of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayGroup is one calendar day of the transaction list.
type DayGroup struct {
	DayKey     string               `json:"day_key"`
	Title      string               `json:"title"`
	Weekday    string               `json:"weekday"`
	Items      []models.Transaction `json:"items"`
	DayIncome  decimal.Decimal      `json:"day_income"`
	DayExpense decimal.Decimal      `json:"day_expense"`
}

// SortNewestFirst orders txns by date descending in place. Equal timestamps
// are ordered by id.
func SortNewestFirst(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
}

// GroupByDay buckets transactions by calendar day in now's location, newest
// day first. Items inside a day are ordered newest first with ties broken by
// id, so the output does not depend on input order.
func GroupByDay(txns []models.Transaction, now time.Time) []DayGroup {
	loc := now.Location()
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	SortNewestFirst(sorted)

	groups := []DayGroup{}
	for _, t := range sorted {
		key := DayKey(t.Date, loc)
		if len(groups) == 0 || groups[len(groups)-1].DayKey != key {
			groups = append(groups, DayGroup{
				DayKey:     key,
				Title:      dayTitle(t.Date, now),
				Weekday:    WeekdayLabel(t.Date.In(loc).Weekday()),
				DayIncome:  decimal.Zero,
				DayExpense: decimal.Zero,
			})
		}
		g := &groups[len(groups)-1]
		g.Items = append(g.Items, t)
		switch t.Type {
		case models.TransactionTypeIncome:
			g.DayIncome = g.DayIncome.Add(t.Amount)
		case models.TransactionTypeExpense:
			g.DayExpense = g.DayExpense.Add(t.Amount)
		}
	}
	return groups
}

func dayTitle(date, now time.Time) string {
	loc := now.Location()
	key := DayKey(date, loc)
	today := StartOfDay(now, loc)
	switch key {
	case today.Format(dayKeyLayout):
		return "今天"
	case today.AddDate(0, 0, -1).Format(dayKeyLayout):
		return "昨天"
	}
	local := date.In(loc)
	return fmt.Sprintf("%d月%d日", int(local.Month()), local.Day())
}

// DayPoint is one bar of the daily spend chart.
type DayPoint struct {
	DayKey string          `json:"day_key"`
	Label  string          `json:"label"`
	Total  decimal.Decimal `json:"total"`
}

// DailySeries returns exactly days entries, oldest first, ending with today,
// each holding that day's expense total. Days without spend report zero.
func DailySeries(txns []models.Transaction, days int, now time.Time) []DayPoint {
	if days <= 0 {
		return []DayPoint{}
	}
	loc := now.Location()
	today := StartOfDay(now, loc)

	series := make([]DayPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		key := day.Format(dayKeyLayout)
		series[i] = DayPoint{DayKey: key, Label: WeekdayLabel(day.Weekday()), Total: decimal.Zero}
		index[key] = i
	}

	for _, t := range txns {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if i, ok := index[DayKey(t.Date, loc)]; ok {
			series[i].Total = series[i].Total.Add(t.Amount)
		}
	}
	return series
}
