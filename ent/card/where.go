// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/smartanki/smartanki/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCategoryID, v))
}

// Front applies equality check predicate on the "front" field. It's identical to FrontEQ.
func Front(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFront, v))
}

// Back applies equality check predicate on the "back" field. It's identical to BackEQ.
func Back(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBack, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldEaseFactor, v))
}

// Interval applies equality check predicate on the "interval" field. It's identical to IntervalEQ.
func Interval(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldInterval, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewCount, v))
}

// LapseCount applies equality check predicate on the "lapse_count" field. It's identical to LapseCountEQ.
func LapseCount(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLapseCount, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldCategoryID))
}

// CardTypeEQ applies the EQ predicate on the "card_type" field.
func CardTypeEQ(v CardType) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCardType, v))
}

// CardTypeNEQ applies the NEQ predicate on the "card_type" field.
func CardTypeNEQ(v CardType) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCardType, v))
}

// CardTypeIn applies the In predicate on the "card_type" field.
func CardTypeIn(vs ...CardType) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCardType, vs...))
}

// CardTypeNotIn applies the NotIn predicate on the "card_type" field.
func CardTypeNotIn(vs ...CardType) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCardType, vs...))
}

// FrontEQ applies the EQ predicate on the "front" field.
func FrontEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldFront, v))
}

// FrontNEQ applies the NEQ predicate on the "front" field.
func FrontNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldFront, v))
}

// FrontIn applies the In predicate on the "front" field.
func FrontIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldFront, vs...))
}

// FrontNotIn applies the NotIn predicate on the "front" field.
func FrontNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldFront, vs...))
}

// FrontGT applies the GT predicate on the "front" field.
func FrontGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldFront, v))
}

// FrontGTE applies the GTE predicate on the "front" field.
func FrontGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldFront, v))
}

// FrontLT applies the LT predicate on the "front" field.
func FrontLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldFront, v))
}

// FrontLTE applies the LTE predicate on the "front" field.
func FrontLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldFront, v))
}

// FrontContains applies the Contains predicate on the "front" field.
func FrontContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldFront, v))
}

// FrontHasPrefix applies the HasPrefix predicate on the "front" field.
func FrontHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldFront, v))
}

// FrontHasSuffix applies the HasSuffix predicate on the "front" field.
func FrontHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldFront, v))
}

// FrontEqualFold applies the EqualFold predicate on the "front" field.
func FrontEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldFront, v))
}

// FrontContainsFold applies the ContainsFold predicate on the "front" field.
func FrontContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldFront, v))
}

// BackEQ applies the EQ predicate on the "back" field.
func BackEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBack, v))
}

// BackNEQ applies the NEQ predicate on the "back" field.
func BackNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBack, v))
}

// BackIn applies the In predicate on the "back" field.
func BackIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBack, vs...))
}

// BackNotIn applies the NotIn predicate on the "back" field.
func BackNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBack, vs...))
}

// BackGT applies the GT predicate on the "back" field.
func BackGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBack, v))
}

// BackGTE applies the GTE predicate on the "back" field.
func BackGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBack, v))
}

// BackLT applies the LT predicate on the "back" field.
func BackLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBack, v))
}

// BackLTE applies the LTE predicate on the "back" field.
func BackLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBack, v))
}

// BackContains applies the Contains predicate on the "back" field.
func BackContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBack, v))
}

// BackHasPrefix applies the HasPrefix predicate on the "back" field.
func BackHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBack, v))
}

// BackHasSuffix applies the HasSuffix predicate on the "back" field.
func BackHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBack, v))
}

// BackEqualFold applies the EqualFold predicate on the "back" field.
func BackEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBack, v))
}

// BackContainsFold applies the ContainsFold predicate on the "back" field.
func BackContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBack, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalEQ applies the EQ predicate on the "interval" field.
func IntervalEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldInterval, v))
}

// IntervalNEQ applies the NEQ predicate on the "interval" field.
func IntervalNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldInterval, v))
}

// IntervalIn applies the In predicate on the "interval" field.
func IntervalIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldInterval, vs...))
}

// IntervalNotIn applies the NotIn predicate on the "interval" field.
func IntervalNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldInterval, vs...))
}

// IntervalGT applies the GT predicate on the "interval" field.
func IntervalGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldInterval, v))
}

// IntervalGTE applies the GTE predicate on the "interval" field.
func IntervalGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldInterval, v))
}

// IntervalLT applies the LT predicate on the "interval" field.
func IntervalLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldInterval, v))
}

// IntervalLTE applies the LTE predicate on the "interval" field.
func IntervalLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldInterval, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldNextReview))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldReviewCount, v))
}

// LapseCountEQ applies the EQ predicate on the "lapse_count" field.
func LapseCountEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLapseCount, v))
}

// LapseCountNEQ applies the NEQ predicate on the "lapse_count" field.
func LapseCountNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldLapseCount, v))
}

// LapseCountIn applies the In predicate on the "lapse_count" field.
func LapseCountIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldLapseCount, vs...))
}

// LapseCountNotIn applies the NotIn predicate on the "lapse_count" field.
func LapseCountNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldLapseCount, vs...))
}

// LapseCountGT applies the GT predicate on the "lapse_count" field.
func LapseCountGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldLapseCount, v))
}

// LapseCountGTE applies the GTE predicate on the "lapse_count" field.
func LapseCountGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldLapseCount, v))
}

// LapseCountLT applies the LT predicate on the "lapse_count" field.
func LapseCountLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldLapseCount, v))
}

// LapseCountLTE applies the LTE predicate on the "lapse_count" field.
func LapseCountLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldLapseCount, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
