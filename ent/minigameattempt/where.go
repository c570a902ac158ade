// Code generated by ent, DO NOT EDIT.

package minigameattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldID, id))
}

// MinigameID applies equality check predicate on the "minigame_id" field. It's identical to MinigameIDEQ.
func MinigameID(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldMinigameID, v))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldQuestID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldCorrectAnswers, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldPassed, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// MinigameIDEQ applies the EQ predicate on the "minigame_id" field.
func MinigameIDEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldMinigameID, v))
}

// MinigameIDNEQ applies the NEQ predicate on the "minigame_id" field.
func MinigameIDNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldMinigameID, v))
}

// MinigameIDIn applies the In predicate on the "minigame_id" field.
func MinigameIDIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldMinigameID, vs...))
}

// MinigameIDNotIn applies the NotIn predicate on the "minigame_id" field.
func MinigameIDNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldMinigameID, vs...))
}

// MinigameIDGT applies the GT predicate on the "minigame_id" field.
func MinigameIDGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldMinigameID, v))
}

// MinigameIDGTE applies the GTE predicate on the "minigame_id" field.
func MinigameIDGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldMinigameID, v))
}

// MinigameIDLT applies the LT predicate on the "minigame_id" field.
func MinigameIDLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldMinigameID, v))
}

// MinigameIDLTE applies the LTE predicate on the "minigame_id" field.
func MinigameIDLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldMinigameID, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldQuestID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldContainsFold(FieldLearnerID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldPassed, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MinigameAttempt) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MinigameAttempt) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MinigameAttempt) predicate.MinigameAttempt {
	return predicate.MinigameAttempt(sql.NotPredicates(p))
}
