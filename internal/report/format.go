package report

import "time"

// Format controls how result dates are rendered for filtering and export.
type Format struct {
	DateLayout     string
	DateTimeLayout string
	Location       *time.Location
}

func DefaultFormat() Format {
	return Format{
		DateLayout:     "01/02/2006",
		DateTimeLayout: "01/02/2006 15:04:05",
		Location:       time.UTC,
	}
}

func (f Format) loc() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// Date renders the calendar-date portion used by the date filter.
func (f Format) Date(t time.Time) string {
	layout := f.DateLayout
	if layout == "" {
		layout = DefaultFormat().DateLayout
	}
	return t.In(f.loc()).Format(layout)
}

// DateTime renders the full timestamp shown in the CSV export.
func (f Format) DateTime(t time.Time) string {
	layout := f.DateTimeLayout
	if layout == "" {
		layout = DefaultFormat().DateTimeLayout
	}
	return t.In(f.loc()).Format(layout)
}
