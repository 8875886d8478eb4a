package location

import (
	"errors"

	"serviceconnect/models"
)

var (
	ErrRequiredFields     = errors.New("city and pincode are required")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrPermissionDenied   = errors.New("location access denied")
	ErrUnsupported        = errors.New("location not supported")
	ErrUnavailable        = errors.New("location unavailable")
)

// NoticeFor maps a capture error to the advisory shown to the customer.
func NoticeFor(err error) models.Notice {
	switch {
	case errors.Is(err, ErrRequiredFields):
		return models.Notice{
			Title:       "Required fields",
			Description: "Please enter both city and PIN code.",
			Variant:     models.NoticeDestructive,
		}
	case errors.Is(err, ErrUnsupported):
		return models.Notice{
			Title:       "Location not supported",
			Description: "Please enter your city and PIN code manually.",
			Variant:     models.NoticeDestructive,
		}
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrUnavailable):
		return models.Notice{
			Title:       "Location access denied",
			Description: "Please enter your city and PIN code manually.",
			Variant:     models.NoticeDestructive,
		}
	}
	return models.Notice{
		Title:       "Location detection failed",
		Description: "Please enter your location manually.",
		Variant:     models.NoticeDestructive,
	}
}
