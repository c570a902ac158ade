// Code generated by ent, DO NOT EDIT.

package lessoncontent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldID, id))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldQuestID, v))
}

// Emoji applies equality check predicate on the "emoji" field. It's identical to EmojiEQ.
func Emoji(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldEmoji, v))
}

// Heading applies equality check predicate on the "heading" field. It's identical to HeadingEQ.
func Heading(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldHeading, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldDescription, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v int) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldQuestID, v))
}

// EmojiEQ applies the EQ predicate on the "emoji" field.
func EmojiEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldEmoji, v))
}

// EmojiNEQ applies the NEQ predicate on the "emoji" field.
func EmojiNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldEmoji, v))
}

// EmojiIn applies the In predicate on the "emoji" field.
func EmojiIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldEmoji, vs...))
}

// EmojiNotIn applies the NotIn predicate on the "emoji" field.
func EmojiNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldEmoji, vs...))
}

// EmojiGT applies the GT predicate on the "emoji" field.
func EmojiGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldEmoji, v))
}

// EmojiGTE applies the GTE predicate on the "emoji" field.
func EmojiGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldEmoji, v))
}

// EmojiLT applies the LT predicate on the "emoji" field.
func EmojiLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldEmoji, v))
}

// EmojiLTE applies the LTE predicate on the "emoji" field.
func EmojiLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldEmoji, v))
}

// EmojiContains applies the Contains predicate on the "emoji" field.
func EmojiContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldEmoji, v))
}

// EmojiHasPrefix applies the HasPrefix predicate on the "emoji" field.
func EmojiHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldEmoji, v))
}

// EmojiHasSuffix applies the HasSuffix predicate on the "emoji" field.
func EmojiHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldEmoji, v))
}

// EmojiEqualFold applies the EqualFold predicate on the "emoji" field.
func EmojiEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldEmoji, v))
}

// EmojiContainsFold applies the ContainsFold predicate on the "emoji" field.
func EmojiContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldEmoji, v))
}

// HeadingEQ applies the EQ predicate on the "heading" field.
func HeadingEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldHeading, v))
}

// HeadingNEQ applies the NEQ predicate on the "heading" field.
func HeadingNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldHeading, v))
}

// HeadingIn applies the In predicate on the "heading" field.
func HeadingIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldHeading, vs...))
}

// HeadingNotIn applies the NotIn predicate on the "heading" field.
func HeadingNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldHeading, vs...))
}

// HeadingGT applies the GT predicate on the "heading" field.
func HeadingGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldHeading, v))
}

// HeadingGTE applies the GTE predicate on the "heading" field.
func HeadingGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldHeading, v))
}

// HeadingLT applies the LT predicate on the "heading" field.
func HeadingLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldHeading, v))
}

// HeadingLTE applies the LTE predicate on the "heading" field.
func HeadingLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldHeading, v))
}

// HeadingContains applies the Contains predicate on the "heading" field.
func HeadingContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldHeading, v))
}

// HeadingHasPrefix applies the HasPrefix predicate on the "heading" field.
func HeadingHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldHeading, v))
}

// HeadingHasSuffix applies the HasSuffix predicate on the "heading" field.
func HeadingHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldHeading, v))
}

// HeadingEqualFold applies the EqualFold predicate on the "heading" field.
func HeadingEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldHeading, v))
}

// HeadingContainsFold applies the ContainsFold predicate on the "heading" field.
func HeadingContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldHeading, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LessonContent {
	return predicate.LessonContent(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonContent) predicate.LessonContent {
	return predicate.LessonContent(sql.NotPredicates(p))
}
