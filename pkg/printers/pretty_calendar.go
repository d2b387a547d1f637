package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/forkful/pkg/event"
)

const width = len("11 12 13 14 15 16 17") // an example week

const layoutISO = "2006-01-02"

// Calendar prints a month grid with event days highlighted, followed by the
// events of that month in date order.
func (pp *PrettyPrint) Calendar(on time.Time, events []event.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)

	days := DaysIn(then)
	count := make([]int, days)
	for _, e := range events {
		if t, err := time.Parse(layoutISO, e.Start); err == nil {
			if t.Year() == then.Year() && t.Month() == then.Month() {
				count[t.Day()-1]++
			}
		}
	}

	pp.printMonthCount(then, count)
	pp.monthEvents(then, events)
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func (pp *PrettyPrint) monthEvents(then time.Time, events []event.Event) {
	p := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	printed := false
	for day := 1; day <= DaysIn(then); day++ {
		for _, e := range events {
			t, err := time.Parse(layoutISO, e.Start)
			if err != nil || t.Year() != then.Year() || t.Month() != then.Month() || t.Day() != day {
				continue
			}
			if pp.ShowID {
				_, _ = y.Printf("%-14s ", e.ID)
			}
			_, _ = f.Printf("%s  ", e.Start)
			_, _ = p.Print(e.Title)
			if e.URL != "" {
				_, _ = f.Printf("  %s", e.URL)
			}
			_, _ = p.Println("")
			printed = true
		}
	}
	if !printed {
		pp.none()
		return
	}
	_, _ = p.Println("")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
