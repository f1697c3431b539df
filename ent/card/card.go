// Code generated by ent, DO NOT EDIT.

package card

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldCardType holds the string denoting the card_type field in the database.
	FieldCardType = "card_type"
	// FieldFront holds the string denoting the front field in the database.
	FieldFront = "front"
	// FieldBack holds the string denoting the back field in the database.
	FieldBack = "back"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldInterval holds the string denoting the interval field in the database.
	FieldInterval = "interval"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldLapseCount holds the string denoting the lapse_count field in the database.
	FieldLapseCount = "lapse_count"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// Table holds the table name of the card in the database.
	Table = "cards"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "cards"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldCardType,
	FieldFront,
	FieldBack,
	FieldMetadata,
	FieldCreatedAt,
	FieldEaseFactor,
	FieldInterval,
	FieldNextReview,
	FieldReviewCount,
	FieldLapseCount,
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
	// FrontValidator is a validator for the "front" field. It is called by the builders before save.
	FrontValidator func(string) error
	// DefaultBack holds the default value on creation for the "back" field.
	DefaultBack string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultInterval holds the default value on creation for the "interval" field.
	DefaultInterval int
	// IntervalValidator is a validator for the "interval" field. It is called by the builders before save.
	IntervalValidator func(int) error
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	ReviewCountValidator func(int) error
	// DefaultLapseCount holds the default value on creation for the "lapse_count" field.
	DefaultLapseCount int
	// LapseCountValidator is a validator for the "lapse_count" field. It is called by the builders before save.
	LapseCountValidator func(int) error
)

// CardType defines the type for the "card_type" enum field.
type CardType string

// CardTypeTypeIn is the default value of the CardType enum.
const DefaultCardType = CardTypeTypeIn

// CardType values.
const (
	CardTypeTypeIn  CardType = "type_in"
	CardTypeReverse CardType = "reverse"
	CardTypeCloze   CardType = "cloze"
)

func (ct CardType) String() string {
	return string(ct)
}

// CardTypeValidator is a validator for the "card_type" field enum values. It is called by the builders before save.
func CardTypeValidator(ct CardType) error {
	switch ct {
	case CardTypeTypeIn, CardTypeReverse, CardTypeCloze:
		return nil
	default:
		return fmt.Errorf("card: invalid enum value for card_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByCardType orders the results by the card_type field.
func ByCardType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardType, opts...).ToFunc()
}

// ByFront orders the results by the front field.
func ByFront(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFront, opts...).ToFunc()
}

// ByBack orders the results by the back field.
func ByBack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBack, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByInterval orders the results by the interval field.
func ByInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterval, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByLapseCount orders the results by the lapse_count field.
func ByLapseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapseCount, opts...).ToFunc()
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
	)
}
