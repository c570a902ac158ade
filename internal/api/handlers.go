package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/abhisek/cookquest/internal/curriculum"
	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/questgraph"
	"github.com/abhisek/cookquest/internal/session"
)

var validate = validator.New()

func (s *Server) registerRoutes(r *mux.Router) {
	r.HandleFunc("/learners/{learnerId}/quests", s.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/learners/{learnerId}/quests/{questId}/complete", s.handleComplete).Methods(http.MethodPost)
	r.HandleFunc("/learners/{learnerId}/quests/{questId}/attempts", s.handleSubmitAttempt).Methods(http.MethodPost)
	r.HandleFunc("/learners/{learnerId}/attempts", s.handleAttempts).Methods(http.MethodGet)
	r.HandleFunc("/quests/{questId}/lesson", s.handleLesson).Methods(http.MethodGet)
	r.HandleFunc("/quests/{questId}/minigame", s.handleMinigame).Methods(http.MethodGet)
	r.HandleFunc("/seed", s.handleSeed).Methods(http.MethodPost)
}

func questIDVar(r *http.Request) (int, error) {
	raw := mux.Vars(r)["questId"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &questgraph.ValidationError{Message: fmt.Sprintf("quest id %q is not a number", raw)}
	}
	return id, nil
}

type questResponse struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	CuisineType   string `json:"cuisineType,omitempty"`
	MaxStars      int    `json:"maxStars"`
	Prerequisites []int  `json:"prerequisites"`
	Status        string `json:"status"`
	Stars         int    `json:"stars"`
}

func boardToResponse(board []session.BoardEntry) []questResponse {
	out := make([]questResponse, 0, len(board))
	for _, e := range board {
		prereqs := e.Quest.Prerequisites
		if prereqs == nil {
			prereqs = []int{}
		}
		out = append(out, questResponse{
			ID:            e.Quest.ID,
			Title:         e.Quest.Title,
			Type:          string(e.Quest.Type),
			Category:      string(e.Quest.Category),
			CuisineType:   string(e.Quest.CuisineType),
			MaxStars:      e.Quest.MaxStars,
			Prerequisites: prereqs,
			Status:        string(e.Status),
			Stars:         e.Stars,
		})
	}
	return out
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	learnerID := mux.Vars(r)["learnerId"]
	board, err := s.service.Board(r.Context(), learnerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"quests": boardToResponse(board)})
}

type completeRequest struct {
	Stars int `json:"stars" validate:"gte=0"`
}

type changeResponse struct {
	QuestID int    `json:"questId"`
	From    string `json:"from"`
	To      string `json:"to"`
	Stars   int    `json:"stars,omitempty"`
}

func changesToResponse(changes []questgraph.Change) []changeResponse {
	out := make([]changeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, changeResponse{
			QuestID: c.QuestID,
			From:    string(c.From),
			To:      string(c.To),
			Stars:   c.Stars,
		})
	}
	return out
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	learnerID := mux.Vars(r)["learnerId"]
	questID, err := questIDVar(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	changes, err := s.service.CompleteQuest(r.Context(), learnerID, questID, req.Stars)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"changes": changesToResponse(changes)})
}

type lessonResponse struct {
	QuestID     int      `json:"questId"`
	Emoji       string   `json:"emoji"`
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Hints       []string `json:"hints"`
}

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDVar(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	lesson, err := s.service.Lesson(r.Context(), questID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if lesson == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("quest %d has no lesson", questID))
		return
	}
	writeJSON(w, http.StatusOK, lessonResponse{
		QuestID:     lesson.QuestID,
		Emoji:       lesson.Emoji,
		Heading:     lesson.Heading,
		Description: lesson.Description,
		Steps:       lesson.Steps,
		Hints:       lesson.Hints,
	})
}

// questionResponse carries a question to the client with every answer
// field stripped. Grading happens server side only.
type questionResponse struct {
	Position   int      `json:"position"`
	Type       string   `json:"type"`
	Text       string   `json:"text"`
	LeftItems  []string `json:"leftItems,omitempty"`
	RightItems []string `json:"rightItems,omitempty"`
	BlankText  string   `json:"blankText,omitempty"`
	Options    []string `json:"options,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Points     int      `json:"points"`
}

type minigameResponse struct {
	QuestID       int                `json:"questId"`
	Title         string             `json:"title"`
	Type          string             `json:"type"`
	Description   string             `json:"description"`
	Difficulty    string             `json:"difficulty"`
	TimeLimitSecs int                `json:"timeLimitSecs"`
	RequiredScore int                `json:"requiredScore"`
	Questions     []questionResponse `json:"questions"`
}

func (s *Server) handleMinigame(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDVar(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	mg, questions, err := s.service.MinigameForQuest(r.Context(), questID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if mg == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("quest %d has no minigame", questID))
		return
	}

	qs := make([]questionResponse, 0, len(questions))
	for i, q := range questions {
		qs = append(qs, questionResponse{
			Position:   i,
			Type:       string(q.Type),
			Text:       q.Text,
			LeftItems:  q.LeftItems,
			RightItems: q.RightItems,
			BlankText:  q.BlankText,
			Options:    q.Options,
			ImageURL:   q.ImageURL,
			Points:     q.Points,
		})
	}
	writeJSON(w, http.StatusOK, minigameResponse{
		QuestID:       mg.QuestID,
		Title:         mg.Title,
		Type:          string(mg.Type),
		Description:   mg.Description,
		Difficulty:    string(mg.Difficulty),
		TimeLimitSecs: mg.TimeLimitSecs,
		RequiredScore: mg.RequiredScore,
		Questions:     qs,
	})
}

type attemptRequest struct {
	// Answers are positional: Answers[i] responds to the i-th question.
	Answers       []minigame.Answer `json:"answers" validate:"required"`
	TimeSpentSecs int               `json:"timeSpentSecs" validate:"gte=0"`
}

type attemptResponse struct {
	AttemptID     string           `json:"attemptId"`
	Score         int              `json:"score"`
	Correct       int              `json:"correct"`
	Total         int              `json:"total"`
	RequiredScore int              `json:"requiredScore"`
	Passed        bool             `json:"passed"`
	StarsAwarded  int              `json:"starsAwarded"`
	Changes       []changeResponse `json:"changes"`
}

func (s *Server) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	learnerID := mux.Vars(r)["learnerId"]
	questID, err := questIDVar(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	answers := make(map[int]minigame.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = a
	}

	result, err := s.service.SubmitAttempt(r.Context(), learnerID, questID, answers, req.TimeSpentSecs)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attemptResponse{
		AttemptID:     result.AttemptID.String(),
		Score:         result.Score,
		Correct:       result.Correct,
		Total:         result.Total,
		RequiredScore: result.RequiredScore,
		Passed:        result.Passed,
		StarsAwarded:  result.StarsAwarded,
		Changes:       changesToResponse(result.Changes),
	})
}

type attemptRecordResponse struct {
	ID          string    `json:"id"`
	QuestID     int       `json:"questId"`
	Score       int       `json:"score"`
	Correct     int       `json:"correct"`
	Total       int       `json:"total"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completedAt"`
}

func (s *Server) handleAttempts(w http.ResponseWriter, r *http.Request) {
	learnerID := mux.Vars(r)["learnerId"]
	attempts, err := s.service.Attempts(r.Context(), learnerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]attemptRecordResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptRecordResponse{
			ID:          a.ID.String(),
			QuestID:     a.QuestID,
			Score:       a.Score,
			Correct:     a.CorrectAnswers,
			Total:       a.TotalQuestions,
			Passed:      a.Passed,
			CompletedAt: a.CompletedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"attempts": out})
}

// handleSeed loads the built-in curriculum, or one posted as JSON. With
// quests already present it reports inserted: 0 and changes nothing.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	var cur *curriculum.Curriculum
	if r.ContentLength > 0 {
		loaded, err := curriculum.Load(r.Body)
		if err != nil {
			var ce *questgraph.CycleError
			if errors.As(err, &ce) {
				writeError(w, http.StatusUnprocessableEntity, err)
				return
			}
			writeError(w, http.StatusBadRequest, err)
			return
		}
		cur = loaded
	} else {
		cur = curriculum.Default()
	}

	inserted, err := s.store.Seed(r.Context(), cur)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"inserted": inserted})
}
