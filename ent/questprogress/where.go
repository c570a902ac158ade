// Code generated by ent, DO NOT EDIT.

package questprogress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldLearnerID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldQuestID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldStatus, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldStars, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLTE(FieldQuestID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldContainsFold(FieldStatus, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.QuestProgress {
	return predicate.QuestProgress(sql.FieldLTE(FieldStars, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestProgress) predicate.QuestProgress {
	return predicate.QuestProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestProgress) predicate.QuestProgress {
	return predicate.QuestProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestProgress) predicate.QuestProgress {
	return predicate.QuestProgress(sql.NotPredicates(p))
}
