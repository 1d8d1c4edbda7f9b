// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"fmt"
	"time"
)

// Kolom tanggal (attendance, admission, leave) disimpan sebagai "hari kanonik":
// UTC midnight. Dengan begitu key unik (person, date) dan query range tidak
// tergantung timezone pemanggil.

const DateLayout = "2006-01-02"

// DayUTC memotong t ke awal hari dalam UTC.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay menerima "YYYY-MM-DD" atau RFC3339 dan menormalkan ke hari UTC.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DayUTC(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayUTC(t), nil
	}
	return time.Time{}, fmt.Errorf("format tanggal tidak dikenali: %q", s)
}

// ExpandDays mengembalikan satu entri per hari kalender, inklusif kedua ujung.
// start > end dianggap input salah.
func ExpandDays(start, end time.Time) ([]time.Time, error) {
	s := DayUTC(start)
	e := DayUTC(end)
	if s.After(e) {
		return nil, fmt.Errorf("rentang tanggal terbalik: %s > %s", s.Format(DateLayout), e.Format(DateLayout))
	}
	days := make([]time.Time, 0, int(e.Sub(s).Hours()/24)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// SameDay: dua instan jatuh di hari UTC yang sama.
func SameDay(a, b time.Time) bool {
	return DayUTC(a).Equal(DayUTC(b))
}
