package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

var t0 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	store  *store.Store
	clock  *spacedrep.FixedClock
	server *Server
	mock   *llm.MockProvider
}

func newHarness(t *testing.T, withAI bool) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := spacedrep.NewFixedClock(t0)
	svc := review.NewService(review.Deps{
		Cards:   s.CardRepo(),
		Reviews: s.ReviewRepo(),
		Events:  s.EventRepo(),
		Clock:   clock,
	}, review.DefaultConfig())

	h := &harness{store: s, clock: clock}
	deps := Deps{
		Review:     svc,
		Cards:      s.CardRepo(),
		Categories: s.CategoryRepo(),
	}
	if withAI {
		h.mock = llm.NewMockProvider()
		deps.CardGen = cardgen.NewService(h.mock, cardgen.DefaultConfig(), nil)
	}
	h.server = NewServer(deps, Config{})
	return h
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (h *harness) addCard(t *testing.T, front string) cardJSON {
	t.Helper()
	w := h.do(t, http.MethodPost, "/api/v1/cards", map[string]any{"front": front, "back": "b"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[cardJSON](t, w)
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorEnvelope](t, w).Error.Code
}

func TestHealth(t *testing.T) {
	h := newHarness(t, false)
	w := h.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestCardCRUD(t *testing.T) {
	h := newHarness(t, false)

	c := h.addCard(t, "capital of Chile")
	assert.Equal(t, "type_in", c.CardType)
	assert.Equal(t, "new", c.Status)
	assert.Nil(t, c.NextReview)

	w := h.do(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/%d", c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "capital of Chile", decode[cardJSON](t, w).Front)

	w = h.do(t, http.MethodGet, "/api/v1/cards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[struct{ Cards []cardJSON }](t, w).Cards, 1)

	w = h.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/cards/%d", c.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/%d", c.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, w))
}

func TestCreateCardValidation(t *testing.T) {
	h := newHarness(t, false)

	w := h.do(t, http.MethodPost, "/api/v1/cards", map[string]any{"back": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/cards", map[string]any{"front": "q", "card_type": "essay"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/cards", map[string]any{"front": "q", "category_id": 77})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/cards/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReview(t *testing.T) {
	h := newHarness(t, false)
	c := h.addCard(t, "q")
	path := fmt.Sprintf("/api/v1/cards/%d/reviews", c.ID)

	w := h.do(t, http.MethodPost, path, map[string]any{"quality": 5, "session_id": "s1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[reviewResultJSON](t, w)
	assert.Equal(t, 5, res.Quality)
	assert.Equal(t, 1, res.Next.Interval)
	assert.InDelta(t, 2.6, res.Next.EaseFactor, 1e-9)
	require.NotNil(t, res.Next.NextReview)
	assert.True(t, res.Next.NextReview.Equal(t0.AddDate(0, 0, 1)))
	assert.Equal(t, "not_due", res.Card.Status)
	assert.Equal(t, 1, res.Card.ReviewCount)

	w = h.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	events := decode[struct{ Reviews []reviewEventJSON }](t, w).Reviews
	require.Len(t, events, 1)
	assert.Equal(t, "s1", events[0].SessionID)
	assert.Equal(t, 0, events[0].IntervalBefore)
	assert.Equal(t, 1, events[0].IntervalAfter)
}

func TestSubmitReviewRejectsBadQuality(t *testing.T) {
	h := newHarness(t, false)
	c := h.addCard(t, "q")
	path := fmt.Sprintf("/api/v1/cards/%d/reviews", c.ID)

	for _, body := range []string{`{"quality": 6}`, `{"quality": -1}`, `{"quality": 3.5}`, `{}`} {
		w := h.do(t, http.MethodPost, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, CodeInvalidQuality, errorCode(t, w), body)
	}

	w := h.do(t, http.MethodPost, path, `{"quality": "five"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/cards/999/reviews", `{"quality": 4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing was recorded for the rejected submissions.
	got, err := h.store.CardRepo().Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount)
}

func TestSubmitReviewCorruptState(t *testing.T) {
	h := newHarness(t, false)
	c := h.addCard(t, "q")
	_, err := h.store.Client().Card.UpdateOneID(c.ID).SetEaseFactor(1.0).Save(context.Background())
	require.NoError(t, err)

	w := h.do(t, http.MethodPost, fmt.Sprintf("/api/v1/cards/%d/reviews", c.ID), `{"quality": 4}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeInvalidState, errorCode(t, w))
}

func TestDueCards(t *testing.T) {
	h := newHarness(t, false)
	a := h.addCard(t, "a")
	b := h.addCard(t, "b")
	h.addCard(t, "c")

	// Schedule b into the future.
	w := h.do(t, http.MethodPost, fmt.Sprintf("/api/v1/cards/%d/reviews", b.ID), `{"quality": 5}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/reviews/due", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Cards []dueCardJSON
		Count int
	}](t, w)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, a.ID, body.Cards[0].ID)

	w = h.do(t, http.MethodGet, "/api/v1/reviews/due?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	w = h.do(t, http.MethodGet, "/api/v1/reviews/due?limit=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[struct{ Count int }](t, w).Count)

	w = h.do(t, http.MethodGet, "/api/v1/reviews/due?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidLimit, errorCode(t, w))

	w = h.do(t, http.MethodGet, "/api/v1/reviews/due?limit=ten", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	h.clock.Advance(24 * time.Hour)
	w = h.do(t, http.MethodGet, "/api/v1/reviews/due", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[struct{ Count int }](t, w).Count)
}

func TestPreviewCard(t *testing.T) {
	h := newHarness(t, false)
	c := h.addCard(t, "q")

	w := h.do(t, http.MethodGet, fmt.Sprintf("/api/v1/cards/%d/preview", c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		CardID      int              `json:"card_id"`
		Projections []projectionJSON `json:"projections"`
	}](t, w)
	assert.Equal(t, c.ID, body.CardID)
	require.Len(t, body.Projections, 6)
	assert.Equal(t, 1, body.Projections[0].Interval)
	assert.InDelta(t, 2.35, body.Projections[0].EaseFactor, 1e-9)
	assert.InDelta(t, 2.6, body.Projections[5].EaseFactor, 1e-9)
}

func TestCategories(t *testing.T) {
	h := newHarness(t, false)

	w := h.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "chemistry"})
	require.Equal(t, http.StatusCreated, w.Code)
	cat := decode[categoryJSON](t, w)
	assert.True(t, cat.IsEnabled)

	w = h.do(t, http.MethodPost, "/api/v1/cards", map[string]any{"front": "H2O", "category_id": cat.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = h.do(t, http.MethodGet, fmt.Sprintf("/api/v1/reviews/due?category_id=%d", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct{ Count int }](t, w).Count)

	w = h.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/categories/%d", cat.ID), map[string]any{"is_enabled": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[categoryJSON](t, w).IsEnabled)

	// Cards in a disabled category are never due.
	w = h.do(t, http.MethodGet, "/api/v1/reviews/due", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[struct{ Count int }](t, w).Count)

	w = h.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cats := decode[struct{ Categories []categoryJSON }](t, w).Categories
	require.Len(t, cats, 1)
	assert.Equal(t, 1, cats[0].CardCount)

	w = h.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/categories/%d", cat.ID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPatch, "/api/v1/categories/404", map[string]any{"is_enabled": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStats(t *testing.T) {
	h := newHarness(t, false)
	a := h.addCard(t, "a")
	h.addCard(t, "b")

	w := h.do(t, http.MethodPost, fmt.Sprintf("/api/v1/cards/%d/reviews", a.ID), `{"quality": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[statsJSON](t, w)
	assert.Equal(t, 2, st.TotalCards)
	assert.Equal(t, 1, st.NewCards)
	assert.Equal(t, 1, st.TotalReviews)
	assert.Equal(t, 1, st.Lapses)
	assert.Equal(t, map[string]int{"1": 1}, st.ByQuality)
}

func TestContentEndpointsWithoutAI(t *testing.T) {
	h := newHarness(t, false)

	w := h.do(t, http.MethodPost, "/api/v1/content/process", map[string]any{"content": "x"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, CodeAIUnavailable, errorCode(t, w))

	w = h.do(t, http.MethodPost, "/api/v1/content/query", map[string]any{"query": "x"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func mockJSON(v any) llm.MockResponse {
	b, _ := json.Marshal(v)
	return llm.MockResponse{Content: b}
}

func TestProcessContentSave(t *testing.T) {
	h := newHarness(t, true)
	h.mock.AddResponse(mockJSON(map[string]any{
		"fact_check_results": []map[string]any{{"claim": "water boils at 100C", "accurate": true, "correction": ""}},
		"cards": []map[string]any{
			{"type": "type_in", "front": "Boiling point of water?", "back": "100C", "hint": ""},
			{"type": "cloze", "front": "Water boils at {{c1::100C}}", "back": "100C", "hint": "sea level"},
		},
		"summary":        "Water.",
		"key_points":     []string{"boiling"},
		"related_topics": []string{"pressure"},
	}))

	w := h.do(t, http.MethodPost, "/api/v1/content/process", map[string]any{"content": "Water boils at 100C.", "save": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[processedJSON](t, w)
	assert.Len(t, out.Cards, 2)
	require.Len(t, out.Saved, 2)
	assert.Equal(t, "cloze", out.Saved[1].CardType)
	assert.Equal(t, "sea level", out.Saved[1].Metadata["hint"])

	cards, err := h.store.CardRepo().List(context.Background(), store.CardFilter{})
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestProcessContentProviderErrors(t *testing.T) {
	h := newHarness(t, true)
	h.mock.AddResponse(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("slow down")}})
	w := h.do(t, http.MethodPost, "/api/v1/content/process", map[string]any{"content": "text"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	h.mock.AddResponse(mockJSON(map[string]any{"cards": []any{}}))
	w = h.do(t, http.MethodPost, "/api/v1/content/process", map[string]any{"content": "text"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestQueryContent(t *testing.T) {
	h := newHarness(t, true)
	c := h.addCard(t, "Speed of light?")
	h.mock.AddResponse(mockJSON(map[string]any{
		"answer":         "About 300,000 km/s.",
		"references":     []string{fmt.Sprintf("#%d", c.ID)},
		"related_topics": []string{"relativity"},
	}))

	w := h.do(t, http.MethodPost, "/api/v1/content/query", map[string]any{"query": "how fast is light?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ans := decode[answerJSON](t, w)
	assert.Equal(t, "About 300,000 km/s.", ans.Answer)

	require.Equal(t, 1, h.mock.CallCount())
	assert.Contains(t, h.mock.Calls[0].Messages[0].Content, "Speed of light?")
}
