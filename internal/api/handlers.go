package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

// maxKnowledgeCards bounds the cards sent as context for a query.
const maxKnowledgeCards = 200

var errAIDisabled = errors.New("AI features are not configured")

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

// GET /api/v1/categories
func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.categories.List(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := make([]categoryJSON, len(cats))
	for i, cat := range cats {
		out[i] = toCategoryJSON(cat)
	}
	RespondOK(c, gin.H{"categories": out})
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id"`
}

// POST /api/v1/categories
func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	ctx := c.Request.Context()
	if req.ParentID != nil {
		if _, err := s.categories.Get(ctx, *req.ParentID); err != nil {
			s.respondErr(c, err)
			return
		}
	}
	cat, err := s.categories.Create(ctx, store.NewCategory{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryJSON(cat))
}

type updateCategoryRequest struct {
	IsEnabled *bool `json:"is_enabled"`
}

// PATCH /api/v1/categories/:id
func (s *Server) updateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	if req.IsEnabled == nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, errors.New("is_enabled is required"))
		return
	}
	cat, err := s.categories.SetEnabled(c.Request.Context(), id, *req.IsEnabled)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, toCategoryJSON(cat))
}

// GET /api/v1/cards?category_id=&limit=&offset=
func (s *Server) listCards(c *gin.Context) {
	var f store.CardFilter
	var err error
	if f.CategoryID, err = queryInt(c, "category_id"); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	for name, dst := range map[string]*int{"limit": &f.Limit, "offset": &f.Offset} {
		v, err := queryInt(c, name)
		if err != nil || (v != nil && *v < 0) {
			RespondError(c, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("invalid %s", name))
			return
		}
		if v != nil {
			*dst = *v
		}
	}

	cards, err := s.cards.List(c.Request.Context(), f)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, gin.H{"cards": toCardsJSON(cards, s.review.Now())})
}

type createCardRequest struct {
	CategoryID *int           `json:"category_id"`
	CardType   string         `json:"card_type"`
	Front      string         `json:"front" binding:"required"`
	Back       string         `json:"back"`
	Metadata   map[string]any `json:"metadata"`
}

// POST /api/v1/cards
func (s *Server) createCard(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	typ := store.CardType(req.CardType)
	if typ != "" && !typ.Valid() {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("unknown card_type %q", req.CardType))
		return
	}
	ctx := c.Request.Context()
	if req.CategoryID != nil {
		if _, err := s.categories.Get(ctx, *req.CategoryID); err != nil {
			s.respondErr(c, err)
			return
		}
	}

	card, err := s.cards.Create(ctx, store.NewCard{
		CategoryID: req.CategoryID,
		Type:       typ,
		Front:      req.Front,
		Back:       req.Back,
		Metadata:   req.Metadata,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCardJSON(card, s.review.Now()))
}

// GET /api/v1/cards/:id
func (s *Server) getCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := s.cards.Get(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, toCardJSON(card, s.review.Now()))
}

// DELETE /api/v1/cards/:id
func (s *Server) deleteCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.cards.Delete(c.Request.Context(), id); err != nil {
		s.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/cards/:id/reviews?limit=
func (s *Server) listReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}
	evs, err := s.review.History(c.Request.Context(), id, n)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, gin.H{"reviews": toReviewEventsJSON(evs)})
}

type submitReviewRequest struct {
	// Decoded as a number so fractional ratings can be rejected explicitly.
	Quality   *float64 `json:"quality"`
	SessionID string   `json:"session_id"`
}

// POST /api/v1/cards/:id/reviews
func (s *Server) submitReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	if req.Quality == nil {
		RespondError(c, http.StatusBadRequest, CodeInvalidQuality, errors.New("quality is required"))
		return
	}
	q, err := spacedrep.QualityFromFloat(*req.Quality)
	if err != nil {
		s.respondErr(c, err)
		return
	}

	res, err := s.review.Submit(c.Request.Context(), id, q, req.SessionID)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, toReviewResultJSON(res))
}

// GET /api/v1/cards/:id/preview
func (s *Server) previewCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	proj, err := s.review.Preview(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := make([]projectionJSON, len(proj))
	for i, p := range proj {
		out[i] = projectionJSON{
			Quality:    int(p.Quality),
			Interval:   p.Interval,
			EaseFactor: p.EaseFactor,
			NextReview: p.NextReview,
		}
	}
	RespondOK(c, gin.H{"card_id": id, "projections": out})
}

// GET /api/v1/reviews/due?limit=&category_id=
func (s *Server) dueCards(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeInvalidLimit, err)
		return
	}
	categoryID, err := queryInt(c, "category_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}

	due, err := s.review.Due(c.Request.Context(), review.DueRequest{CategoryID: categoryID, Limit: limit})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	now := s.review.Now()
	out := make([]dueCardJSON, len(due))
	for i, d := range due {
		out[i] = dueCardJSON{cardJSON: toCardJSON(d.Card, now), OverdueDays: d.OverdueDays}
	}
	RespondOK(c, gin.H{"cards": out, "count": len(out)})
}

// GET /api/v1/stats
func (s *Server) stats(c *gin.Context) {
	st, err := s.review.Stats(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	byQ := make(map[string]int, len(st.ByQuality))
	for q, n := range st.ByQuality {
		byQ[strconv.Itoa(q)] = n
	}
	RespondOK(c, statsJSON{
		TotalCards:      st.TotalCards,
		NewCards:        st.NewCards,
		DueCards:        st.DueCards,
		TotalReviews:    st.TotalReviews,
		Lapses:          st.Lapses,
		AvgEaseFactor:   st.AvgEaseFactor,
		AvgIntervalDays: st.AvgIntervalDay,
		ByQuality:       byQ,
	})
}

type processContentRequest struct {
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category"`
	Save       bool   `json:"save"`
	CategoryID *int   `json:"category_id"`
}

// POST /api/v1/content/process
func (s *Server) processContent(c *gin.Context) {
	if s.cardgen == nil {
		RespondError(c, http.StatusServiceUnavailable, CodeAIUnavailable, errAIDisabled)
		return
	}
	var req processContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	ctx := c.Request.Context()

	category := req.Category
	if req.CategoryID != nil {
		cat, err := s.categories.Get(ctx, *req.CategoryID)
		if err != nil {
			s.respondErr(c, err)
			return
		}
		if category == "" {
			category = cat.Name
		}
	}

	processed, err := s.cardgen.ProcessContent(ctx, req.Content, category)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	out := toProcessedJSON(processed)

	if req.Save {
		saved, err := s.cards.CreateBulk(ctx, cardgen.ToNewCards(processed.Cards, req.CategoryID))
		if err != nil {
			s.respondErr(c, err)
			return
		}
		out.Saved = toCardsJSON(saved, s.review.Now())
	}
	RespondOK(c, out)
}

type queryContentRequest struct {
	Query      string `json:"query" binding:"required"`
	CategoryID *int   `json:"category_id"`
}

// POST /api/v1/content/query
func (s *Server) queryContent(c *gin.Context) {
	if s.cardgen == nil {
		RespondError(c, http.StatusServiceUnavailable, CodeAIUnavailable, errAIDisabled)
		return
	}
	var req queryContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	ctx := c.Request.Context()

	cards, err := s.cards.List(ctx, store.CardFilter{CategoryID: req.CategoryID, Limit: maxKnowledgeCards})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	ans, err := s.cardgen.AnswerQuery(ctx, req.Query, cardgen.FormatKnowledge(cards))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	RespondOK(c, answerJSON{
		Answer:        ans.Answer,
		References:    ans.References,
		RelatedTopics: ans.RelatedTopics,
	})
}
