// Code generated by ent, DO NOT EDIT.

package quest

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldID, id))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldSeq, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldTitle, v))
}

// QuestType applies equality check predicate on the "quest_type" field. It's identical to QuestTypeEQ.
func QuestType(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldQuestType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldCategory, v))
}

// CuisineType applies equality check predicate on the "cuisine_type" field. It's identical to CuisineTypeEQ.
func CuisineType(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldCuisineType, v))
}

// MaxStars applies equality check predicate on the "max_stars" field. It's identical to MaxStarsEQ.
func MaxStars(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldMaxStars, v))
}

// InitialStatus applies equality check predicate on the "initial_status" field. It's identical to InitialStatusEQ.
func InitialStatus(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldInitialStatus, v))
}

// InitialStars applies equality check predicate on the "initial_stars" field. It's identical to InitialStarsEQ.
func InitialStars(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldInitialStars, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldSeq, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContainsFold(FieldTitle, v))
}

// QuestTypeEQ applies the EQ predicate on the "quest_type" field.
func QuestTypeEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldQuestType, v))
}

// QuestTypeNEQ applies the NEQ predicate on the "quest_type" field.
func QuestTypeNEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldQuestType, v))
}

// QuestTypeIn applies the In predicate on the "quest_type" field.
func QuestTypeIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldQuestType, vs...))
}

// QuestTypeNotIn applies the NotIn predicate on the "quest_type" field.
func QuestTypeNotIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldQuestType, vs...))
}

// QuestTypeGT applies the GT predicate on the "quest_type" field.
func QuestTypeGT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldQuestType, v))
}

// QuestTypeGTE applies the GTE predicate on the "quest_type" field.
func QuestTypeGTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldQuestType, v))
}

// QuestTypeLT applies the LT predicate on the "quest_type" field.
func QuestTypeLT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldQuestType, v))
}

// QuestTypeLTE applies the LTE predicate on the "quest_type" field.
func QuestTypeLTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldQuestType, v))
}

// QuestTypeContains applies the Contains predicate on the "quest_type" field.
func QuestTypeContains(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContains(FieldQuestType, v))
}

// QuestTypeHasPrefix applies the HasPrefix predicate on the "quest_type" field.
func QuestTypeHasPrefix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasPrefix(FieldQuestType, v))
}

// QuestTypeHasSuffix applies the HasSuffix predicate on the "quest_type" field.
func QuestTypeHasSuffix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasSuffix(FieldQuestType, v))
}

// QuestTypeEqualFold applies the EqualFold predicate on the "quest_type" field.
func QuestTypeEqualFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEqualFold(FieldQuestType, v))
}

// QuestTypeContainsFold applies the ContainsFold predicate on the "quest_type" field.
func QuestTypeContainsFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContainsFold(FieldQuestType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContainsFold(FieldCategory, v))
}

// CuisineTypeEQ applies the EQ predicate on the "cuisine_type" field.
func CuisineTypeEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldCuisineType, v))
}

// CuisineTypeNEQ applies the NEQ predicate on the "cuisine_type" field.
func CuisineTypeNEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldCuisineType, v))
}

// CuisineTypeIn applies the In predicate on the "cuisine_type" field.
func CuisineTypeIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldCuisineType, vs...))
}

// CuisineTypeNotIn applies the NotIn predicate on the "cuisine_type" field.
func CuisineTypeNotIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldCuisineType, vs...))
}

// CuisineTypeGT applies the GT predicate on the "cuisine_type" field.
func CuisineTypeGT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldCuisineType, v))
}

// CuisineTypeGTE applies the GTE predicate on the "cuisine_type" field.
func CuisineTypeGTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldCuisineType, v))
}

// CuisineTypeLT applies the LT predicate on the "cuisine_type" field.
func CuisineTypeLT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldCuisineType, v))
}

// CuisineTypeLTE applies the LTE predicate on the "cuisine_type" field.
func CuisineTypeLTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldCuisineType, v))
}

// CuisineTypeContains applies the Contains predicate on the "cuisine_type" field.
func CuisineTypeContains(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContains(FieldCuisineType, v))
}

// CuisineTypeHasPrefix applies the HasPrefix predicate on the "cuisine_type" field.
func CuisineTypeHasPrefix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasPrefix(FieldCuisineType, v))
}

// CuisineTypeHasSuffix applies the HasSuffix predicate on the "cuisine_type" field.
func CuisineTypeHasSuffix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasSuffix(FieldCuisineType, v))
}

// CuisineTypeIsNil applies the IsNil predicate on the "cuisine_type" field.
func CuisineTypeIsNil() predicate.Quest {
	return predicate.Quest(sql.FieldIsNull(FieldCuisineType))
}

// CuisineTypeNotNil applies the NotNil predicate on the "cuisine_type" field.
func CuisineTypeNotNil() predicate.Quest {
	return predicate.Quest(sql.FieldNotNull(FieldCuisineType))
}

// CuisineTypeEqualFold applies the EqualFold predicate on the "cuisine_type" field.
func CuisineTypeEqualFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEqualFold(FieldCuisineType, v))
}

// CuisineTypeContainsFold applies the ContainsFold predicate on the "cuisine_type" field.
func CuisineTypeContainsFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContainsFold(FieldCuisineType, v))
}

// MaxStarsEQ applies the EQ predicate on the "max_stars" field.
func MaxStarsEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldMaxStars, v))
}

// MaxStarsNEQ applies the NEQ predicate on the "max_stars" field.
func MaxStarsNEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldMaxStars, v))
}

// MaxStarsIn applies the In predicate on the "max_stars" field.
func MaxStarsIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldMaxStars, vs...))
}

// MaxStarsNotIn applies the NotIn predicate on the "max_stars" field.
func MaxStarsNotIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldMaxStars, vs...))
}

// MaxStarsGT applies the GT predicate on the "max_stars" field.
func MaxStarsGT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldMaxStars, v))
}

// MaxStarsGTE applies the GTE predicate on the "max_stars" field.
func MaxStarsGTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldMaxStars, v))
}

// MaxStarsLT applies the LT predicate on the "max_stars" field.
func MaxStarsLT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldMaxStars, v))
}

// MaxStarsLTE applies the LTE predicate on the "max_stars" field.
func MaxStarsLTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldMaxStars, v))
}

// InitialStatusEQ applies the EQ predicate on the "initial_status" field.
func InitialStatusEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldInitialStatus, v))
}

// InitialStatusNEQ applies the NEQ predicate on the "initial_status" field.
func InitialStatusNEQ(v string) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldInitialStatus, v))
}

// InitialStatusIn applies the In predicate on the "initial_status" field.
func InitialStatusIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldInitialStatus, vs...))
}

// InitialStatusNotIn applies the NotIn predicate on the "initial_status" field.
func InitialStatusNotIn(vs ...string) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldInitialStatus, vs...))
}

// InitialStatusGT applies the GT predicate on the "initial_status" field.
func InitialStatusGT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldInitialStatus, v))
}

// InitialStatusGTE applies the GTE predicate on the "initial_status" field.
func InitialStatusGTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldInitialStatus, v))
}

// InitialStatusLT applies the LT predicate on the "initial_status" field.
func InitialStatusLT(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldInitialStatus, v))
}

// InitialStatusLTE applies the LTE predicate on the "initial_status" field.
func InitialStatusLTE(v string) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldInitialStatus, v))
}

// InitialStatusContains applies the Contains predicate on the "initial_status" field.
func InitialStatusContains(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContains(FieldInitialStatus, v))
}

// InitialStatusHasPrefix applies the HasPrefix predicate on the "initial_status" field.
func InitialStatusHasPrefix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasPrefix(FieldInitialStatus, v))
}

// InitialStatusHasSuffix applies the HasSuffix predicate on the "initial_status" field.
func InitialStatusHasSuffix(v string) predicate.Quest {
	return predicate.Quest(sql.FieldHasSuffix(FieldInitialStatus, v))
}

// InitialStatusEqualFold applies the EqualFold predicate on the "initial_status" field.
func InitialStatusEqualFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldEqualFold(FieldInitialStatus, v))
}

// InitialStatusContainsFold applies the ContainsFold predicate on the "initial_status" field.
func InitialStatusContainsFold(v string) predicate.Quest {
	return predicate.Quest(sql.FieldContainsFold(FieldInitialStatus, v))
}

// InitialStarsEQ applies the EQ predicate on the "initial_stars" field.
func InitialStarsEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldEQ(FieldInitialStars, v))
}

// InitialStarsNEQ applies the NEQ predicate on the "initial_stars" field.
func InitialStarsNEQ(v int) predicate.Quest {
	return predicate.Quest(sql.FieldNEQ(FieldInitialStars, v))
}

// InitialStarsIn applies the In predicate on the "initial_stars" field.
func InitialStarsIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldIn(FieldInitialStars, vs...))
}

// InitialStarsNotIn applies the NotIn predicate on the "initial_stars" field.
func InitialStarsNotIn(vs ...int) predicate.Quest {
	return predicate.Quest(sql.FieldNotIn(FieldInitialStars, vs...))
}

// InitialStarsGT applies the GT predicate on the "initial_stars" field.
func InitialStarsGT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGT(FieldInitialStars, v))
}

// InitialStarsGTE applies the GTE predicate on the "initial_stars" field.
func InitialStarsGTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldGTE(FieldInitialStars, v))
}

// InitialStarsLT applies the LT predicate on the "initial_stars" field.
func InitialStarsLT(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLT(FieldInitialStars, v))
}

// InitialStarsLTE applies the LTE predicate on the "initial_stars" field.
func InitialStarsLTE(v int) predicate.Quest {
	return predicate.Quest(sql.FieldLTE(FieldInitialStars, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quest) predicate.Quest {
	return predicate.Quest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quest) predicate.Quest {
	return predicate.Quest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quest) predicate.Quest {
	return predicate.Quest(sql.NotPredicates(p))
}
