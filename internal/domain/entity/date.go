package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout formato ISO de fecha de calendario usado en los documentos.
const DateLayout = "2006-01-02"

// Date fecha de calendario sin hora; se serializa como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate trunca t a la fecha de calendario (UTC).
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today fecha actual.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate interpreta una fecha en formato YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON serializa como "YYYY-MM-DD" (cadena vacía si la fecha es cero).
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta "YYYY-MM-DD", cadena vacía o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Before compara solo la fecha de calendario.
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

// After compara solo la fecha de calendario.
func (d Date) After(o Date) bool { return d.Time.After(o.Time) }
