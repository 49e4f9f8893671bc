package edits

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aquilax/truncate"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/model"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// DateLayout is the format of date fields; empty is also accepted.
const DateLayout = "2006-01-02"

type Kind int

const (
	Text Kind = iota
	LongText
	Number
	Date
	Status
	Country
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case LongText:
		return "textarea"
	case Number:
		return "number"
	case Date:
		return "date"
	case Status:
		return "status"
	case Country:
		return "country"
	default:
		return "<unknown>"
	}
}

// Field describes how a value is entered and validated. MaxLength is in runes; 0 means
// unbounded.
type Field struct {
	Kind      Kind
	MaxLength int
}

// Options lists the accepted values for enum kinds.
func (f Field) Options() []string {
	switch f.Kind {
	case Status:
		return lo.Map(model.BattleStatuses, func(s model.BattleStatus, _ int) string { return s.String() })
	case Country:
		return lo.Map(model.Countries, func(c model.Country, _ int) string { return c.String() })
	default:
		return nil
	}
}

// Parse converts the raw text coming from a control into the field's typed value:
// string, float64, model.BattleStatus or model.Country.
func (f Field) Parse(raw string) (any, error) {
	switch f.Kind {
	case Text, LongText:
		if f.MaxLength > 0 && utf8.RuneCountInString(raw) > f.MaxLength {
			raw = truncate.Truncate(raw, f.MaxLength, "", truncate.PositionEnd)
		}
		return raw, nil

	case Number:
		return parseNumber(raw)

	case Date:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", nil
		}

		_, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidValue, "date '%v'", raw)
		}
		return raw, nil

	case Status:
		s, err := model.ParseBattleStatus(raw)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidValue, err.Error())
		}
		return s, nil

	case Country:
		c, err := model.ParseCountry(raw)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidValue, err.Error())
		}
		return c, nil

	default:
		return nil, errors.Errorf("unknown field kind: %v", f.Kind)
	}
}

// parseNumber treats an empty control as 0 and rejects anything that is not a finite
// number.
func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidValue, "number '%v'", raw)
	}

	return v, nil
}

// Format converts a typed value back into the text a control shows.
func Format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case model.BattleStatus:
		return v.String()
	case model.Country:
		return v.String()
	default:
		return ""
	}
}
