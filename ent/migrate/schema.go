// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonContentsColumns holds the columns for the "lesson_contents" table.
	LessonContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quest_id", Type: field.TypeInt},
		{Name: "emoji", Type: field.TypeString},
		{Name: "heading", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "hints", Type: field.TypeJSON},
	}
	// LessonContentsTable holds the schema information for the "lesson_contents" table.
	LessonContentsTable = &schema.Table{
		Name:       "lesson_contents",
		Columns:    LessonContentsColumns,
		PrimaryKey: []*schema.Column{LessonContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncontent_quest_id",
				Unique:  true,
				Columns: []*schema.Column{LessonContentsColumns[1]},
			},
		},
	}
	// MinigamesColumns holds the columns for the "minigames" table.
	MinigamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quest_id", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "game_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "time_limit_secs", Type: field.TypeInt, Default: 0},
		{Name: "required_score", Type: field.TypeInt},
	}
	// MinigamesTable holds the schema information for the "minigames" table.
	MinigamesTable = &schema.Table{
		Name:       "minigames",
		Columns:    MinigamesColumns,
		PrimaryKey: []*schema.Column{MinigamesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "minigame_quest_id",
				Unique:  true,
				Columns: []*schema.Column{MinigamesColumns[1]},
			},
		},
	}
	// MinigameAttemptsColumns holds the columns for the "minigame_attempts" table.
	MinigameAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "minigame_id", Type: field.TypeInt},
		{Name: "quest_id", Type: field.TypeInt},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// MinigameAttemptsTable holds the schema information for the "minigame_attempts" table.
	MinigameAttemptsTable = &schema.Table{
		Name:       "minigame_attempts",
		Columns:    MinigameAttemptsColumns,
		PrimaryKey: []*schema.Column{MinigameAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "minigameattempt_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MinigameAttemptsColumns[3]},
			},
			{
				Name:    "minigameattempt_learner_id_quest_id",
				Unique:  false,
				Columns: []*schema.Column{MinigameAttemptsColumns[3], MinigameAttemptsColumns[2]},
			},
			{
				Name:    "minigameattempt_minigame_id",
				Unique:  false,
				Columns: []*schema.Column{MinigameAttemptsColumns[1]},
			},
		},
	}
	// MinigameQuestionsColumns holds the columns for the "minigame_questions" table.
	MinigameQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "minigame_id", Type: field.TypeInt},
		{Name: "seq", Type: field.TypeInt},
		{Name: "question_type", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "left_items", Type: field.TypeJSON, Nullable: true},
		{Name: "right_items", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_matches", Type: field.TypeJSON, Nullable: true},
		{Name: "blank_text", Type: field.TypeString, Nullable: true},
		{Name: "correct_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_option_index", Type: field.TypeInt, Default: 0},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "associated_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
	}
	// MinigameQuestionsTable holds the schema information for the "minigame_questions" table.
	MinigameQuestionsTable = &schema.Table{
		Name:       "minigame_questions",
		Columns:    MinigameQuestionsColumns,
		PrimaryKey: []*schema.Column{MinigameQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "minigamequestion_minigame_id",
				Unique:  false,
				Columns: []*schema.Column{MinigameQuestionsColumns[1]},
			},
			{
				Name:    "minigamequestion_minigame_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MinigameQuestionsColumns[1], MinigameQuestionsColumns[2]},
			},
		},
	}
	// QuestsColumns holds the columns for the "quests" table.
	QuestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Unique: true},
		{Name: "quest_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "cuisine_type", Type: field.TypeString, Nullable: true},
		{Name: "max_stars", Type: field.TypeInt},
		{Name: "initial_status", Type: field.TypeString},
		{Name: "initial_stars", Type: field.TypeInt, Default: 0},
		{Name: "prerequisites", Type: field.TypeJSON},
	}
	// QuestsTable holds the schema information for the "quests" table.
	QuestsTable = &schema.Table{
		Name:       "quests",
		Columns:    QuestsColumns,
		PrimaryKey: []*schema.Column{QuestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quest_seq",
				Unique:  false,
				Columns: []*schema.Column{QuestsColumns[1]},
			},
		},
	}
	// QuestProgressesColumns holds the columns for the "quest_progresses" table.
	QuestProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "stars", Type: field.TypeInt, Default: 0},
	}
	// QuestProgressesTable holds the schema information for the "quest_progresses" table.
	QuestProgressesTable = &schema.Table{
		Name:       "quest_progresses",
		Columns:    QuestProgressesColumns,
		PrimaryKey: []*schema.Column{QuestProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questprogress_learner_id_quest_id",
				Unique:  true,
				Columns: []*schema.Column{QuestProgressesColumns[1], QuestProgressesColumns[2]},
			},
			{
				Name:    "questprogress_learner_id",
				Unique:  false,
				Columns: []*schema.Column{QuestProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonContentsTable,
		MinigamesTable,
		MinigameAttemptsTable,
		MinigameQuestionsTable,
		QuestsTable,
		QuestProgressesTable,
	}
)

func init() {
}
