package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

// Error codes returned in the envelope.
const (
	CodeBadRequest     = "bad_request"
	CodeInvalidQuality = "invalid_quality"
	CodeInvalidLimit   = "invalid_limit"
	CodeInvalidState   = "invalid_state"
	CodeNotFound       = "not_found"
	CodeAIUnavailable  = "ai_unavailable"
	CodeAIRateLimited  = "ai_rate_limited"
	CodeAIBadResponse  = "ai_bad_response"
	CodeLockTimeout    = "lock_timeout"
	CodeInternal       = "internal"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondErr maps a service error to a status and code. Unexpected errors
// are logged and reported without detail.
func (s *Server) respondErr(c *gin.Context, err error) {
	var (
		rateLimit *llm.ErrRateLimit
		unavail   *llm.ErrProviderUnavailable
		invalid   *llm.ErrInvalidResponse
		maxTok    *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, spacedrep.ErrInvalidQuality):
		RespondError(c, http.StatusBadRequest, CodeInvalidQuality, err)
	case errors.Is(err, spacedrep.ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, CodeInvalidLimit, err)
	case errors.Is(err, review.ErrCardNotFound), errors.Is(err, store.ErrNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, cardgen.ErrEmptyContent), errors.Is(err, cardgen.ErrEmptyQuery):
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
	case errors.Is(err, spacedrep.ErrInvalidState):
		s.log.Error("corrupt scheduling state", "path", c.FullPath(), "error", err)
		RespondError(c, http.StatusInternalServerError, CodeInvalidState, err)
	case errors.Is(err, store.ErrLockTimeout):
		RespondError(c, http.StatusConflict, CodeLockTimeout, err)
	case errors.As(err, &rateLimit):
		RespondError(c, http.StatusTooManyRequests, CodeAIRateLimited, err)
	case errors.As(err, &unavail):
		RespondError(c, http.StatusServiceUnavailable, CodeAIUnavailable, err)
	case errors.As(err, &invalid), errors.As(err, &maxTok), errors.Is(err, cardgen.ErrNoCards):
		RespondError(c, http.StatusBadGateway, CodeAIBadResponse, err)
	default:
		s.log.Error("request failed", "path", c.FullPath(), "error", err)
		RespondError(c, http.StatusInternalServerError, CodeInternal, errors.New("internal error"))
	}
}
