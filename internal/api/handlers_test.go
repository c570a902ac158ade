package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cookquest/internal/curriculum"
	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/session"
	"github.com/abhisek/cookquest/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Seed(context.Background(), curriculum.Default())
	require.NoError(t, err)

	srv := NewServer(":0", session.NewService(s), s)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(ts.URL+path, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type boardPayload struct {
	Quests []questResponse `json:"quests"`
}

func (b boardPayload) byTitle() map[string]questResponse {
	m := make(map[string]questResponse, len(b.Quests))
	for _, q := range b.Quests {
		m[q.Title] = q
	}
	return m
}

func TestBoardEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	resp := getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, payload.Quests, 7)

	byTitle := payload.byTitle()
	assert.Equal(t, "completed", byTitle["Knife Safety"].Status)
	assert.Equal(t, 3, byTitle["Knife Safety"].Stars)
	assert.Equal(t, "available", byTitle["Basic Cuts"].Status)
	assert.Equal(t, "locked", byTitle["GREATNESS"].Status)
}

func TestCompleteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	cuts := payload.byTitle()["Basic Cuts"]

	var result struct {
		Changes []changeResponse `json:"changes"`
	}
	resp := postJSON(t, ts,
		fmt.Sprintf("/api/v1/learners/learner-1/quests/%d/complete", cuts.ID),
		completeRequest{Stars: 2}, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, result.Changes)

	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	byTitle := payload.byTitle()
	assert.Equal(t, "completed", byTitle["Basic Cuts"].Status)
	assert.Equal(t, 2, byTitle["Basic Cuts"].Stars)
	assert.Equal(t, "available", byTitle["Measuring"].Status)
}

func TestCompleteEndpoint_UnknownQuest(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts, "/api/v1/learners/learner-1/quests/9999/complete", completeRequest{Stars: 1}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompleteEndpoint_InvalidStars(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	cuts := payload.byTitle()["Basic Cuts"]

	// Stars above the quest's ceiling are rejected by the unlock engine.
	resp := postJSON(t, ts,
		fmt.Sprintf("/api/v1/learners/learner-1/quests/%d/complete", cuts.ID),
		completeRequest{Stars: 99}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLessonEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	knife := payload.byTitle()["Knife Safety"]

	var lesson lessonResponse
	resp := getJSON(t, ts, fmt.Sprintf("/api/v1/quests/%d/lesson", knife.ID), &lesson)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, knife.ID, lesson.QuestID)
	assert.NotEmpty(t, lesson.Heading)
	assert.NotEmpty(t, lesson.Steps)

	resp = getJSON(t, ts, "/api/v1/quests/9999/lesson", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMinigameEndpoint_StripsAnswers(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	cuts := payload.byTitle()["Basic Cuts"]

	resp, err := http.Get(ts.URL + fmt.Sprintf("/api/v1/quests/%d/minigame", cuts.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	body := buf.String()

	var mg minigameResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &mg))
	assert.Equal(t, "matching", mg.Type)
	assert.Len(t, mg.Questions, 2)
	assert.NotEmpty(t, mg.Questions[0].LeftItems)

	// The wire payload must never leak grading data.
	for _, leak := range []string{"correctMatches", "correctAnswers", "correctOptionIndex", "explanation"} {
		assert.False(t, strings.Contains(body, leak), "response leaks %s", leak)
	}
}

func TestMinigameEndpoint_QuestWithoutMinigame(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	soup := payload.byTitle()["Simple Soup"]

	resp := getJSON(t, ts, fmt.Sprintf("/api/v1/quests/%d/minigame", soup.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAttemptEndpoint_FailedAttemptRecorded(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	cuts := payload.byTitle()["Basic Cuts"]

	// Wrong answers fail and leave the quest untouched.
	var failed attemptResponse
	resp := postJSON(t, ts,
		fmt.Sprintf("/api/v1/learners/learner-1/quests/%d/attempts", cuts.ID),
		attemptRequest{Answers: []minigame.Answer{}, TimeSpentSecs: 5}, &failed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.False(t, failed.Passed)
	assert.Zero(t, failed.StarsAwarded)

	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	assert.Equal(t, "available", payload.byTitle()["Basic Cuts"].Status)

	var history struct {
		Attempts []attemptRecordResponse `json:"attempts"`
	}
	resp = getJSON(t, ts, "/api/v1/learners/learner-1/attempts", &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, history.Attempts, 1)
	assert.False(t, history.Attempts[0].Passed)
}

func TestAttemptEndpoint_QuestWithoutMinigame(t *testing.T) {
	ts := newTestServer(t)

	var payload boardPayload
	getJSON(t, ts, "/api/v1/learners/learner-1/quests", &payload)
	soup := payload.byTitle()["Simple Soup"]

	resp := postJSON(t, ts,
		fmt.Sprintf("/api/v1/learners/learner-1/quests/%d/attempts", soup.ID),
		attemptRequest{Answers: []minigame.Answer{}}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSeedEndpoint_Idempotent(t *testing.T) {
	ts := newTestServer(t)

	var result struct {
		Inserted int `json:"inserted"`
	}
	resp := postJSON(t, ts, "/api/v1/seed", nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, result.Inserted, "seeding an already-seeded store must insert nothing")
}
