// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldEaseBefore holds the string denoting the ease_before field in the database.
	FieldEaseBefore = "ease_before"
	// FieldEaseAfter holds the string denoting the ease_after field in the database.
	FieldEaseAfter = "ease_after"
	// FieldIntervalBefore holds the string denoting the interval_before field in the database.
	FieldIntervalBefore = "interval_before"
	// FieldIntervalAfter holds the string denoting the interval_after field in the database.
	FieldIntervalAfter = "interval_after"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldCardID,
	FieldQuality,
	FieldEaseBefore,
	FieldEaseAfter,
	FieldIntervalBefore,
	FieldIntervalAfter,
	FieldNextReview,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int64) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	QualityValidator func(int) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByEaseBefore orders the results by the ease_before field.
func ByEaseBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseBefore, opts...).ToFunc()
}

// ByEaseAfter orders the results by the ease_after field.
func ByEaseAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseAfter, opts...).ToFunc()
}

// ByIntervalBefore orders the results by the interval_before field.
func ByIntervalBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalBefore, opts...).ToFunc()
}

// ByIntervalAfter orders the results by the interval_after field.
func ByIntervalAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalAfter, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
