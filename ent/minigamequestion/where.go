// Code generated by ent, DO NOT EDIT.

package minigamequestion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldID, id))
}

// MinigameID applies equality check predicate on the "minigame_id" field. It's identical to MinigameIDEQ.
func MinigameID(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldMinigameID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldSeq, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// BlankText applies equality check predicate on the "blank_text" field. It's identical to BlankTextEQ.
func BlankText(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldBlankText, v))
}

// CorrectOptionIndex applies equality check predicate on the "correct_option_index" field. It's identical to CorrectOptionIndexEQ.
func CorrectOptionIndex(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldImageURL, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldExplanation, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldPoints, v))
}

// MinigameIDEQ applies the EQ predicate on the "minigame_id" field.
func MinigameIDEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldMinigameID, v))
}

// MinigameIDNEQ applies the NEQ predicate on the "minigame_id" field.
func MinigameIDNEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldMinigameID, v))
}

// MinigameIDIn applies the In predicate on the "minigame_id" field.
func MinigameIDIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldMinigameID, vs...))
}

// MinigameIDNotIn applies the NotIn predicate on the "minigame_id" field.
func MinigameIDNotIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldMinigameID, vs...))
}

// MinigameIDGT applies the GT predicate on the "minigame_id" field.
func MinigameIDGT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldMinigameID, v))
}

// MinigameIDGTE applies the GTE predicate on the "minigame_id" field.
func MinigameIDGTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldMinigameID, v))
}

// MinigameIDLT applies the LT predicate on the "minigame_id" field.
func MinigameIDLT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldMinigameID, v))
}

// MinigameIDLTE applies the LTE predicate on the "minigame_id" field.
func MinigameIDLTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldMinigameID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldSeq, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContainsFold(FieldQuestionType, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContainsFold(FieldQuestionText, v))
}

// LeftItemsIsNil applies the IsNil predicate on the "left_items" field.
func LeftItemsIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldLeftItems))
}

// LeftItemsNotNil applies the NotNil predicate on the "left_items" field.
func LeftItemsNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldLeftItems))
}

// RightItemsIsNil applies the IsNil predicate on the "right_items" field.
func RightItemsIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldRightItems))
}

// RightItemsNotNil applies the NotNil predicate on the "right_items" field.
func RightItemsNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldRightItems))
}

// CorrectMatchesIsNil applies the IsNil predicate on the "correct_matches" field.
func CorrectMatchesIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldCorrectMatches))
}

// CorrectMatchesNotNil applies the NotNil predicate on the "correct_matches" field.
func CorrectMatchesNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldCorrectMatches))
}

// BlankTextEQ applies the EQ predicate on the "blank_text" field.
func BlankTextEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldBlankText, v))
}

// BlankTextNEQ applies the NEQ predicate on the "blank_text" field.
func BlankTextNEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldBlankText, v))
}

// BlankTextIn applies the In predicate on the "blank_text" field.
func BlankTextIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldBlankText, vs...))
}

// BlankTextNotIn applies the NotIn predicate on the "blank_text" field.
func BlankTextNotIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldBlankText, vs...))
}

// BlankTextGT applies the GT predicate on the "blank_text" field.
func BlankTextGT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldBlankText, v))
}

// BlankTextGTE applies the GTE predicate on the "blank_text" field.
func BlankTextGTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldBlankText, v))
}

// BlankTextLT applies the LT predicate on the "blank_text" field.
func BlankTextLT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldBlankText, v))
}

// BlankTextLTE applies the LTE predicate on the "blank_text" field.
func BlankTextLTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldBlankText, v))
}

// BlankTextContains applies the Contains predicate on the "blank_text" field.
func BlankTextContains(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContains(FieldBlankText, v))
}

// BlankTextHasPrefix applies the HasPrefix predicate on the "blank_text" field.
func BlankTextHasPrefix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasPrefix(FieldBlankText, v))
}

// BlankTextHasSuffix applies the HasSuffix predicate on the "blank_text" field.
func BlankTextHasSuffix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasSuffix(FieldBlankText, v))
}

// BlankTextIsNil applies the IsNil predicate on the "blank_text" field.
func BlankTextIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldBlankText))
}

// BlankTextNotNil applies the NotNil predicate on the "blank_text" field.
func BlankTextNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldBlankText))
}

// BlankTextEqualFold applies the EqualFold predicate on the "blank_text" field.
func BlankTextEqualFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEqualFold(FieldBlankText, v))
}

// BlankTextContainsFold applies the ContainsFold predicate on the "blank_text" field.
func BlankTextContainsFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContainsFold(FieldBlankText, v))
}

// CorrectAnswersIsNil applies the IsNil predicate on the "correct_answers" field.
func CorrectAnswersIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldCorrectAnswers))
}

// CorrectAnswersNotNil applies the NotNil predicate on the "correct_answers" field.
func CorrectAnswersNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldCorrectAnswers))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldOptions))
}

// CorrectOptionIndexEQ applies the EQ predicate on the "correct_option_index" field.
func CorrectOptionIndexEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexNEQ applies the NEQ predicate on the "correct_option_index" field.
func CorrectOptionIndexNEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexIn applies the In predicate on the "correct_option_index" field.
func CorrectOptionIndexIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexNotIn applies the NotIn predicate on the "correct_option_index" field.
func CorrectOptionIndexNotIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldCorrectOptionIndex, vs...))
}

// CorrectOptionIndexGT applies the GT predicate on the "correct_option_index" field.
func CorrectOptionIndexGT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexGTE applies the GTE predicate on the "correct_option_index" field.
func CorrectOptionIndexGTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLT applies the LT predicate on the "correct_option_index" field.
func CorrectOptionIndexLT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldCorrectOptionIndex, v))
}

// CorrectOptionIndexLTE applies the LTE predicate on the "correct_option_index" field.
func CorrectOptionIndexLTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldCorrectOptionIndex, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContainsFold(FieldImageURL, v))
}

// AssociatedTermsIsNil applies the IsNil predicate on the "associated_terms" field.
func AssociatedTermsIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldAssociatedTerms))
}

// AssociatedTermsNotNil applies the NotNil predicate on the "associated_terms" field.
func AssociatedTermsNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldAssociatedTerms))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.FieldLTE(FieldPoints, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MinigameQuestion) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MinigameQuestion) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MinigameQuestion) predicate.MinigameQuestion {
	return predicate.MinigameQuestion(sql.NotPredicates(p))
}
