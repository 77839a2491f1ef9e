package domain

import "fmt"

// RecordParseError marks a single daily record as unusable. The
// aggregation pass recovers from these by skipping the record, so they
// only surface through logs and tests.
type RecordParseError struct {
	Date   string
	Reason string
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("unparseable record date %q: %s", e.Date, e.Reason)
}

// IntegrityError means the aggregated data cannot be ordered or
// summarized - an empty input sequence, or a month key that escaped
// normalization. These are surfaced to the caller, not defaulted.
type IntegrityError struct {
	Detail string
}

func (e *IntegrityError) Error() string {
	return "data integrity error: " + e.Detail
}
