package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"serviceconnect/models"
)

// Method is how the customer wants to reach a provider.
type Method string

const (
	MethodCall    Method = "call"
	MethodMessage Method = "message"
	MethodQuote   Method = "quote"
)

// Kind is the external effect of a dispatched contact.
type Kind string

const (
	KindDial   Kind = "dial"
	KindLink   Kind = "link"
	KindNotice Kind = "notice"
)

var (
	ErrUnknownMethod = errors.New("unknown contact method")
	ErrNoPhone       = errors.New("provider has no phone number")
)

const chatBaseURL = "https://wa.me/"

// Action is what the client should do: open Target, or show Notice.
type Action struct {
	Method Method         `json:"method"`
	Kind   Kind           `json:"kind"`
	Target string         `json:"target,omitempty"`
	Notice *models.Notice `json:"notice,omitempty"`
}

// ParseMethod accepts the method names used in links; "whatsapp" is an
// alias of message.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return MethodCall, nil
	case "message", "whatsapp":
		return MethodMessage, nil
	case "quote":
		return MethodQuote, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Dispatcher maps a provider and a method to an Action.
type Dispatcher struct {
	AppName string
}

func NewDispatcher(appName string) *Dispatcher {
	return &Dispatcher{AppName: appName}
}

func (d *Dispatcher) Dispatch(p models.Provider, m Method) (Action, error) {
	switch m {
	case MethodCall:
		if strings.TrimSpace(p.Phone) == "" {
			return Action{}, ErrNoPhone
		}
		return Action{Method: m, Kind: KindDial, Target: "tel:" + p.Phone}, nil

	case MethodMessage:
		number := SanitizePhone(p.Phone)
		if number == "" {
			return Action{}, ErrNoPhone
		}
		text := d.Greeting(p)
		return Action{Method: m, Kind: KindLink, Target: chatBaseURL + number + "?text=" + EscapeComponent(text)}, nil

	case MethodQuote:
		return Action{Method: m, Kind: KindNotice, Notice: &models.Notice{
			Title:       "Quote Request",
			Description: "Lead form feature will be available soon. Please call or WhatsApp for now.",
			Variant:     models.NoticeDefault,
		}}, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
}

// Greeting is the prewritten chat message for a provider.
func (d *Dispatcher) Greeting(p models.Provider) string {
	return fmt.Sprintf("Hi %s, I found you on %s. I need help with %s.", p.Name, d.AppName, p.Service)
}

// SanitizePhone drops every character that is not an ASCII digit.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// componentUnescaper undoes the QueryEscape encodings that encodeURIComponent
// does not apply: space is %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s the way encodeURIComponent does.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
