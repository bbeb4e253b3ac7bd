package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"servibook/entity"
)

// WeekdayName maps a calendar date to the lowercase weekday key used by
// Schedule and EmployeeSlot rows.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ParseClock parses an "HH:MM" wall-clock string into minutes since
// midnight.
func ParseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// GenerateSlots produces the ordered candidate start times for one schedule
// day: open, open+duration, ... while strictly before close. The last slot
// may end past closing; only its start is checked, matching the booking
// rule businesses already rely on.
//
// Inactive or malformed days yield an empty result, never an error: zero
// slots is indistinguishable from "closed" for the caller.
func GenerateSlots(day entity.Schedule) []string {
	if !day.IsActive {
		return nil
	}
	open, ok := ParseClock(day.OpenTime)
	if !ok {
		return nil
	}
	closeAt, ok := ParseClock(day.CloseTime)
	if !ok {
		return nil
	}
	if closeAt <= open || day.SlotDurationMinutes <= 0 || day.CapacityPerSlot <= 0 {
		return nil
	}

	var slots []string
	for m := open; m < closeAt; m += day.SlotDurationMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// scheduleFor picks the weekday row out of a business's timetable.
func scheduleFor(b *entity.Business, weekday string) *entity.Schedule {
	for i := range b.Schedules {
		if b.Schedules[i].Weekday == weekday {
			return &b.Schedules[i]
		}
	}
	return nil
}
