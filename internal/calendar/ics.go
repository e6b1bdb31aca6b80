// Package calendar renders checklist deadlines as an iCalendar feed.
package calendar

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	ics "github.com/arran4/golang-ical"
)

const productID = "-//chk//Posting Checklist//PT"

// Event is one all-day entry.
type Event struct {
	UID         string
	Summary     string
	Description string
	Date        civil.Date
}

// Build returns an RFC 5545 calendar with one all-day VEVENT per event.
// now stamps DTSTAMP.
func Build(events []Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, ev := range events {
		vev := cal.AddEvent(ev.UID)
		vev.SetDtStampTime(now.UTC())
		vev.SetSummary(ev.Summary)
		vev.SetAllDayStartAt(ev.Date.In(time.UTC))
		vev.SetAllDayEndAt(ev.Date.AddDays(1).In(time.UTC))

		if desc := strings.TrimSpace(ev.Description); desc != "" {
			vev.SetDescription(desc)
		}
	}

	return cal.Serialize()
}
