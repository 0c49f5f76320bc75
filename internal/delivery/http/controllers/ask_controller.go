package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"richmondtech/internal/delivery/http/helpers"
	"richmondtech/internal/domain"
)

// AskRequest is the request body for POST /ask.
type AskRequest struct {
	Question string         `json:"question"`
	Context  map[string]any `json:"context,omitempty"`
}

// Validate implements Validator.
func (a AskRequest) Validate() []string {
	if strings.TrimSpace(a.Question) == "" {
		return []string{"question is required"}
	}
	return nil
}

// AskSuccessResponse is the success response envelope for POST /ask (200).
type AskSuccessResponse struct {
	Data  *domain.Answer    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AskController struct {
	Logger  *slog.Logger
	Service domain.AskService
}

func NewAskController(logger *slog.Logger, svc domain.AskService) *AskController {
	return &AskController{Logger: logger, Service: svc}
}

// Ask godoc
// @Summary Ask a question about the Richmond tech community
// @Description Answers a free-text question using the local classifier and, when configured, a hosted language model with data lookup tools.
// @Tags ask
// @Accept json
// @Produce json
// @Param ask body AskRequest true "Question"
// @Success 200 {object} controllers.AskSuccessResponse "data contains the answer, tools used, and metadata"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: store_unavailable or model_error"
// @Failure 504 {object} helpers.APIResponse "error.code: timeout"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ask [post]
func (c *AskController) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	answer, err := c.Service.Ask(r.Context(), req.Question, req.Context)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, answer)
}

// writeError maps service errors to statuses. 5xx messages are canned
// so store addresses and credentials never reach the caller.
func (c *AskController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := helpers.StatusFromError(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		switch code {
		case helpers.ErrCodeStoreUnavailable:
			msg = "the record store is unavailable"
		case helpers.ErrCodeModelError:
			msg = "the model service failed to answer"
		case helpers.ErrCodeTimeout:
			msg = "the request timed out"
		default:
			msg = "internal error"
		}
	}
	helpers.WriteJSONError(w, status, code, msg)
}
