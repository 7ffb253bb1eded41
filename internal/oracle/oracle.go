package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LeaveExtraction is the oracle's best full-state guess for one leave
// utterance. Every field is nullable; a null means "no new information",
// never "erase". Flexible scalar types absorb the model returning numbers
// where strings belong and vice versa.
type LeaveExtraction struct {
	EmployeeID   *FlexString `json:"employee_id"`
	EmployeeName *FlexString `json:"employee_name"`
	LeaveType    *FlexString `json:"leave_type"`
	StartDate    *FlexString `json:"start_date"`
	EndDate      *FlexString `json:"end_date"`
	NumberOfDays *FlexInt    `json:"number_of_days"`
	Comments     *FlexString `json:"comments"`
}

// FeedbackExtraction is the oracle's classification of one feedback
// utterance. Feedback and ActionItems tolerate string-or-list output.
type FeedbackExtraction struct {
	Feedback    FlexStrings `json:"feedback"`
	Sentiment   string      `json:"sentiment"`
	ActionItems FlexStrings `json:"action_items"`
}

//go:generate mockgen -source=oracle.go -destination=mock/oracle_mock.go -package=mock

// LeaveExtractor merges one utterance against the current draft into a
// candidate field set. An error means the call yielded no new information.
type LeaveExtractor interface {
	ExtractLeave(ctx context.Context, utterance string, current LeaveExtraction, today string) (LeaveExtraction, error)
}

type FeedbackClassifier interface {
	ClassifyFeedback(ctx context.Context, utterance string) (FeedbackExtraction, error)
}

// IntentClassifier returns one token among POLICY, LEAVE, FEEDBACK; any
// other output is for the caller to treat as unclassified.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, utterance, activeFlow string) (string, error)
}

// FlexString unmarshals from a JSON string or number. Numeric input is
// rendered back as its decimal string (employee ids often come back as
// bare numbers).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexInt unmarshals from a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return fmt.Errorf("empty day count")
	}
	// Models occasionally answer "3.0"; accept it as 3, but a fractional
	// value is garbage, not a day count.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*f = FlexInt(int(v))
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// FlexStrings unmarshals from a single JSON string or a list of values.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var items []any
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, fmt.Sprintf("%v", item))
		}
		*f = out
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("expected string or list: %w", err)
	}
	*f = FlexStrings{v}
	return nil
}

// Join flattens the values with sep, or returns "" when empty.
func (f FlexStrings) Join(sep string) string {
	return strings.Join(f, sep)
}
