// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cookquest/ent/lessoncontent"
	"github.com/abhisek/cookquest/ent/minigame"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/ent/quest"
	"github.com/abhisek/cookquest/ent/questprogress"
	"github.com/abhisek/cookquest/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessoncontentFields := schema.LessonContent{}.Fields()
	_ = lessoncontentFields
	// lessoncontentDescHeading is the schema descriptor for heading field.
	lessoncontentDescHeading := lessoncontentFields[2].Descriptor()
	// lessoncontent.HeadingValidator is a validator for the "heading" field. It is called by the builders before save.
	lessoncontent.HeadingValidator = lessoncontentDescHeading.Validators[0].(func(string) error)
	// lessoncontentDescDescription is the schema descriptor for description field.
	lessoncontentDescDescription := lessoncontentFields[3].Descriptor()
	// lessoncontent.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	lessoncontent.DescriptionValidator = lessoncontentDescDescription.Validators[0].(func(string) error)
	minigameFields := schema.Minigame{}.Fields()
	_ = minigameFields
	// minigameDescTitle is the schema descriptor for title field.
	minigameDescTitle := minigameFields[1].Descriptor()
	// minigame.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	minigame.TitleValidator = minigameDescTitle.Validators[0].(func(string) error)
	// minigameDescGameType is the schema descriptor for game_type field.
	minigameDescGameType := minigameFields[2].Descriptor()
	// minigame.GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	minigame.GameTypeValidator = minigameDescGameType.Validators[0].(func(string) error)
	// minigameDescDifficulty is the schema descriptor for difficulty field.
	minigameDescDifficulty := minigameFields[4].Descriptor()
	// minigame.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	minigame.DifficultyValidator = minigameDescDifficulty.Validators[0].(func(string) error)
	// minigameDescEnabled is the schema descriptor for enabled field.
	minigameDescEnabled := minigameFields[5].Descriptor()
	// minigame.DefaultEnabled holds the default value on creation for the enabled field.
	minigame.DefaultEnabled = minigameDescEnabled.Default.(bool)
	// minigameDescTimeLimitSecs is the schema descriptor for time_limit_secs field.
	minigameDescTimeLimitSecs := minigameFields[6].Descriptor()
	// minigame.DefaultTimeLimitSecs holds the default value on creation for the time_limit_secs field.
	minigame.DefaultTimeLimitSecs = minigameDescTimeLimitSecs.Default.(int)
	// minigameDescRequiredScore is the schema descriptor for required_score field.
	minigameDescRequiredScore := minigameFields[7].Descriptor()
	// minigame.RequiredScoreValidator is a validator for the "required_score" field. It is called by the builders before save.
	minigame.RequiredScoreValidator = minigameDescRequiredScore.Validators[0].(func(int) error)
	minigameattemptFields := schema.MinigameAttempt{}.Fields()
	_ = minigameattemptFields
	// minigameattemptDescLearnerID is the schema descriptor for learner_id field.
	minigameattemptDescLearnerID := minigameattemptFields[3].Descriptor()
	// minigameattempt.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	minigameattempt.LearnerIDValidator = minigameattemptDescLearnerID.Validators[0].(func(string) error)
	// minigameattemptDescScore is the schema descriptor for score field.
	minigameattemptDescScore := minigameattemptFields[4].Descriptor()
	// minigameattempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	minigameattempt.ScoreValidator = minigameattemptDescScore.Validators[0].(func(int) error)
	// minigameattemptDescTotalQuestions is the schema descriptor for total_questions field.
	minigameattemptDescTotalQuestions := minigameattemptFields[5].Descriptor()
	// minigameattempt.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	minigameattempt.TotalQuestionsValidator = minigameattemptDescTotalQuestions.Validators[0].(func(int) error)
	// minigameattemptDescCorrectAnswers is the schema descriptor for correct_answers field.
	minigameattemptDescCorrectAnswers := minigameattemptFields[6].Descriptor()
	// minigameattempt.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	minigameattempt.CorrectAnswersValidator = minigameattemptDescCorrectAnswers.Validators[0].(func(int) error)
	// minigameattemptDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	minigameattemptDescTimeSpentSecs := minigameattemptFields[7].Descriptor()
	// minigameattempt.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	minigameattempt.TimeSpentSecsValidator = minigameattemptDescTimeSpentSecs.Validators[0].(func(int) error)
	// minigameattemptDescCompletedAt is the schema descriptor for completed_at field.
	minigameattemptDescCompletedAt := minigameattemptFields[9].Descriptor()
	// minigameattempt.DefaultCompletedAt holds the default value on creation for the completed_at field.
	minigameattempt.DefaultCompletedAt = minigameattemptDescCompletedAt.Default.(func() time.Time)
	// minigameattemptDescID is the schema descriptor for id field.
	minigameattemptDescID := minigameattemptFields[0].Descriptor()
	// minigameattempt.DefaultID holds the default value on creation for the id field.
	minigameattempt.DefaultID = minigameattemptDescID.Default.(func() uuid.UUID)
	minigamequestionFields := schema.MinigameQuestion{}.Fields()
	_ = minigamequestionFields
	// minigamequestionDescQuestionType is the schema descriptor for question_type field.
	minigamequestionDescQuestionType := minigamequestionFields[2].Descriptor()
	// minigamequestion.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	minigamequestion.QuestionTypeValidator = minigamequestionDescQuestionType.Validators[0].(func(string) error)
	// minigamequestionDescQuestionText is the schema descriptor for question_text field.
	minigamequestionDescQuestionText := minigamequestionFields[3].Descriptor()
	// minigamequestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	minigamequestion.QuestionTextValidator = minigamequestionDescQuestionText.Validators[0].(func(string) error)
	// minigamequestionDescCorrectOptionIndex is the schema descriptor for correct_option_index field.
	minigamequestionDescCorrectOptionIndex := minigamequestionFields[10].Descriptor()
	// minigamequestion.DefaultCorrectOptionIndex holds the default value on creation for the correct_option_index field.
	minigamequestion.DefaultCorrectOptionIndex = minigamequestionDescCorrectOptionIndex.Default.(int)
	// minigamequestionDescPoints is the schema descriptor for points field.
	minigamequestionDescPoints := minigamequestionFields[14].Descriptor()
	// minigamequestion.DefaultPoints holds the default value on creation for the points field.
	minigamequestion.DefaultPoints = minigamequestionDescPoints.Default.(int)
	// minigamequestion.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	minigamequestion.PointsValidator = minigamequestionDescPoints.Validators[0].(func(int) error)
	questFields := schema.Quest{}.Fields()
	_ = questFields
	// questDescTitle is the schema descriptor for title field.
	questDescTitle := questFields[1].Descriptor()
	// quest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	quest.TitleValidator = questDescTitle.Validators[0].(func(string) error)
	// questDescQuestType is the schema descriptor for quest_type field.
	questDescQuestType := questFields[2].Descriptor()
	// quest.QuestTypeValidator is a validator for the "quest_type" field. It is called by the builders before save.
	quest.QuestTypeValidator = questDescQuestType.Validators[0].(func(string) error)
	// questDescCategory is the schema descriptor for category field.
	questDescCategory := questFields[3].Descriptor()
	// quest.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	quest.CategoryValidator = questDescCategory.Validators[0].(func(string) error)
	// questDescMaxStars is the schema descriptor for max_stars field.
	questDescMaxStars := questFields[5].Descriptor()
	// quest.MaxStarsValidator is a validator for the "max_stars" field. It is called by the builders before save.
	quest.MaxStarsValidator = questDescMaxStars.Validators[0].(func(int) error)
	// questDescInitialStatus is the schema descriptor for initial_status field.
	questDescInitialStatus := questFields[6].Descriptor()
	// quest.InitialStatusValidator is a validator for the "initial_status" field. It is called by the builders before save.
	quest.InitialStatusValidator = questDescInitialStatus.Validators[0].(func(string) error)
	// questDescInitialStars is the schema descriptor for initial_stars field.
	questDescInitialStars := questFields[7].Descriptor()
	// quest.DefaultInitialStars holds the default value on creation for the initial_stars field.
	quest.DefaultInitialStars = questDescInitialStars.Default.(int)
	questprogressFields := schema.QuestProgress{}.Fields()
	_ = questprogressFields
	// questprogressDescLearnerID is the schema descriptor for learner_id field.
	questprogressDescLearnerID := questprogressFields[0].Descriptor()
	// questprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	questprogress.LearnerIDValidator = questprogressDescLearnerID.Validators[0].(func(string) error)
	// questprogressDescStatus is the schema descriptor for status field.
	questprogressDescStatus := questprogressFields[2].Descriptor()
	// questprogress.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	questprogress.StatusValidator = questprogressDescStatus.Validators[0].(func(string) error)
	// questprogressDescStars is the schema descriptor for stars field.
	questprogressDescStars := questprogressFields[3].Descriptor()
	// questprogress.DefaultStars holds the default value on creation for the stars field.
	questprogress.DefaultStars = questprogressDescStars.Default.(int)
	// questprogress.StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	questprogress.StarsValidator = questprogressDescStars.Validators[0].(func(int) error)
}
