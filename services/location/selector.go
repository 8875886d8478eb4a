package location

import (
	"context"
	"fmt"
	"strings"

	"serviceconnect/models"
)

// State of the location prompt.
type State int

const (
	Prompting State = iota
	Captured
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case Captured:
		return "captured"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selector is the location capture state machine. It is a value: every
// transition returns a new Selector and leaves the receiver untouched.
type Selector struct {
	state    State
	location *models.Location
}

// NewSelector starts in Prompting. current, if set, is kept as the last
// known location and prefills the form.
func NewSelector(current *models.Location) Selector {
	return Selector{state: Prompting, location: cloneLocation(current)}
}

func (s Selector) State() State { return s.state }

// Location is the last captured location, or nil.
func (s Selector) Location() *models.Location { return cloneLocation(s.location) }

// Prefill returns the city and PIN code to show in the manual entry form.
func (s Selector) Prefill() (city, pincode string) {
	if s.location == nil {
		return "", ""
	}
	return s.location.City, s.location.Pincode
}

// Submit captures a manually entered location. Surrounding whitespace is
// removed; if either field is then empty the selector is returned unchanged
// with ErrRequiredFields.
func (s Selector) Submit(city, pincode string) (Selector, error) {
	city, pincode = strings.TrimSpace(city), strings.TrimSpace(pincode)
	if city == "" || pincode == "" {
		return s, ErrRequiredFields
	}
	return Selector{state: Captured, location: &models.Location{City: city, Pincode: pincode}}, nil
}

// Detect makes one detection attempt from a device position. Failures keep
// the selector in its current state and come back as an advisory notice.
func (s Selector) Detect(ctx context.Context, d Detector, pos Position) (Selector, models.Notice, error) {
	if err := pos.Err(); err != nil {
		return s, NoticeFor(err), err
	}
	loc, err := d.Detect(ctx, *pos.Lat, *pos.Lng)
	if err != nil {
		return s, NoticeFor(err), err
	}
	next := Selector{state: Captured, location: &loc}
	return next, models.Notice{
		Title:       "Location detected",
		Description: fmt.Sprintf("Found you in %s", loc.City),
		Variant:     models.NoticeDefault,
	}, nil
}

// Change reopens the prompt, keeping the last location as the prefill.
func (s Selector) Change() Selector {
	return Selector{state: Prompting, location: cloneLocation(s.location)}
}

func cloneLocation(l *models.Location) *models.Location {
	if l == nil {
		return nil
	}
	cp := *l
	if l.Lat != nil {
		lat := *l.Lat
		cp.Lat = &lat
	}
	if l.Lng != nil {
		lng := *l.Lng
		cp.Lng = &lng
	}
	return &cp
}
