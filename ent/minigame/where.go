// Code generated by ent, DO NOT EDIT.

package minigame

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldID, id))
}

// QuestID applies equality check predicate on the "quest_id" field. It's identical to QuestIDEQ.
func QuestID(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldQuestID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldTitle, v))
}

// GameType applies equality check predicate on the "game_type" field. It's identical to GameTypeEQ.
func GameType(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldGameType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldDescription, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldDifficulty, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldEnabled, v))
}

// TimeLimitSecs applies equality check predicate on the "time_limit_secs" field. It's identical to TimeLimitSecsEQ.
func TimeLimitSecs(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// RequiredScore applies equality check predicate on the "required_score" field. It's identical to RequiredScoreEQ.
func RequiredScore(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldRequiredScore, v))
}

// QuestIDEQ applies the EQ predicate on the "quest_id" field.
func QuestIDEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldQuestID, v))
}

// QuestIDNEQ applies the NEQ predicate on the "quest_id" field.
func QuestIDNEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldQuestID, v))
}

// QuestIDIn applies the In predicate on the "quest_id" field.
func QuestIDIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldQuestID, vs...))
}

// QuestIDNotIn applies the NotIn predicate on the "quest_id" field.
func QuestIDNotIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldQuestID, vs...))
}

// QuestIDGT applies the GT predicate on the "quest_id" field.
func QuestIDGT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldQuestID, v))
}

// QuestIDGTE applies the GTE predicate on the "quest_id" field.
func QuestIDGTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldQuestID, v))
}

// QuestIDLT applies the LT predicate on the "quest_id" field.
func QuestIDLT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldQuestID, v))
}

// QuestIDLTE applies the LTE predicate on the "quest_id" field.
func QuestIDLTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldQuestID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContainsFold(FieldTitle, v))
}

// GameTypeEQ applies the EQ predicate on the "game_type" field.
func GameTypeEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldGameType, v))
}

// GameTypeNEQ applies the NEQ predicate on the "game_type" field.
func GameTypeNEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldGameType, v))
}

// GameTypeIn applies the In predicate on the "game_type" field.
func GameTypeIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldGameType, vs...))
}

// GameTypeNotIn applies the NotIn predicate on the "game_type" field.
func GameTypeNotIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldGameType, vs...))
}

// GameTypeGT applies the GT predicate on the "game_type" field.
func GameTypeGT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldGameType, v))
}

// GameTypeGTE applies the GTE predicate on the "game_type" field.
func GameTypeGTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldGameType, v))
}

// GameTypeLT applies the LT predicate on the "game_type" field.
func GameTypeLT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldGameType, v))
}

// GameTypeLTE applies the LTE predicate on the "game_type" field.
func GameTypeLTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldGameType, v))
}

// GameTypeContains applies the Contains predicate on the "game_type" field.
func GameTypeContains(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContains(FieldGameType, v))
}

// GameTypeHasPrefix applies the HasPrefix predicate on the "game_type" field.
func GameTypeHasPrefix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasPrefix(FieldGameType, v))
}

// GameTypeHasSuffix applies the HasSuffix predicate on the "game_type" field.
func GameTypeHasSuffix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasSuffix(FieldGameType, v))
}

// GameTypeEqualFold applies the EqualFold predicate on the "game_type" field.
func GameTypeEqualFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEqualFold(FieldGameType, v))
}

// GameTypeContainsFold applies the ContainsFold predicate on the "game_type" field.
func GameTypeContainsFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContainsFold(FieldGameType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContainsFold(FieldDescription, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Minigame {
	return predicate.Minigame(sql.FieldContainsFold(FieldDifficulty, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldEnabled, v))
}

// TimeLimitSecsEQ applies the EQ predicate on the "time_limit_secs" field.
func TimeLimitSecsEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsNEQ applies the NEQ predicate on the "time_limit_secs" field.
func TimeLimitSecsNEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldTimeLimitSecs, v))
}

// TimeLimitSecsIn applies the In predicate on the "time_limit_secs" field.
func TimeLimitSecsIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsNotIn applies the NotIn predicate on the "time_limit_secs" field.
func TimeLimitSecsNotIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldTimeLimitSecs, vs...))
}

// TimeLimitSecsGT applies the GT predicate on the "time_limit_secs" field.
func TimeLimitSecsGT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsGTE applies the GTE predicate on the "time_limit_secs" field.
func TimeLimitSecsGTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLT applies the LT predicate on the "time_limit_secs" field.
func TimeLimitSecsLT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldTimeLimitSecs, v))
}

// TimeLimitSecsLTE applies the LTE predicate on the "time_limit_secs" field.
func TimeLimitSecsLTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldTimeLimitSecs, v))
}

// RequiredScoreEQ applies the EQ predicate on the "required_score" field.
func RequiredScoreEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldEQ(FieldRequiredScore, v))
}

// RequiredScoreNEQ applies the NEQ predicate on the "required_score" field.
func RequiredScoreNEQ(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNEQ(FieldRequiredScore, v))
}

// RequiredScoreIn applies the In predicate on the "required_score" field.
func RequiredScoreIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldIn(FieldRequiredScore, vs...))
}

// RequiredScoreNotIn applies the NotIn predicate on the "required_score" field.
func RequiredScoreNotIn(vs ...int) predicate.Minigame {
	return predicate.Minigame(sql.FieldNotIn(FieldRequiredScore, vs...))
}

// RequiredScoreGT applies the GT predicate on the "required_score" field.
func RequiredScoreGT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGT(FieldRequiredScore, v))
}

// RequiredScoreGTE applies the GTE predicate on the "required_score" field.
func RequiredScoreGTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldGTE(FieldRequiredScore, v))
}

// RequiredScoreLT applies the LT predicate on the "required_score" field.
func RequiredScoreLT(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLT(FieldRequiredScore, v))
}

// RequiredScoreLTE applies the LTE predicate on the "required_score" field.
func RequiredScoreLTE(v int) predicate.Minigame {
	return predicate.Minigame(sql.FieldLTE(FieldRequiredScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Minigame) predicate.Minigame {
	return predicate.Minigame(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Minigame) predicate.Minigame {
	return predicate.Minigame(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Minigame) predicate.Minigame {
	return predicate.Minigame(sql.NotPredicates(p))
}
