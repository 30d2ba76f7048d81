package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/draft"
	"github.com/pusdatin-umc/helpdesk-service/internal/observability"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// DraftsHandler saves and restores unsubmitted ticket forms.
type DraftsHandler struct {
	autosaver *draft.Autosaver
	metrics   *observability.Metrics
}

// NewDraftsHandler constructs handler.
func NewDraftsHandler(autosaver *draft.Autosaver, metrics *observability.Metrics) *DraftsHandler {
	return &DraftsHandler{autosaver: autosaver, metrics: metrics}
}

// Save PUT /drafts/:draftID. The write is debounced unless ?flush=true is given.
func (h *DraftsHandler) Save(c *fiber.Ctx) error {
	var d domain.TicketDraft
	if err := parseBody(c, &d); err != nil {
		return err
	}
	id := c.Params("draftID")

	if c.QueryBool("flush") {
		saved, err := h.autosaver.Flush(c.UserContext(), id, d)
		if err != nil {
			return draftError(err)
		}
		h.metrics.RecordDraftSave("flush")
		return respond(c, http.StatusOK, saved, "Draft disimpan")
	}

	if err := h.autosaver.Update(id, d); err != nil {
		return draftError(err)
	}
	h.metrics.RecordDraftSave("debounced")
	return respond(c, http.StatusAccepted, d, "")
}

// Load GET /drafts/:draftID.
func (h *DraftsHandler) Load(c *fiber.Ctx) error {
	d, err := h.autosaver.Load(c.UserContext(), c.Params("draftID"))
	if err != nil {
		return draftError(err)
	}
	return respond(c, http.StatusOK, d, "")
}

// Discard DELETE /drafts/:draftID.
func (h *DraftsHandler) Discard(c *fiber.Ctx) error {
	if err := h.autosaver.Discard(c.UserContext(), c.Params("draftID")); err != nil {
		return draftError(err)
	}
	return respond(c, http.StatusOK, nil, "Draft dihapus")
}

func draftError(err error) error {
	switch {
	case errors.Is(err, draft.ErrInvalidID):
		return apperrors.NewBadRequest("ID draft tidak valid")
	case errors.Is(err, draft.ErrNotFound):
		return apperrors.NewNotFound("Draft")
	}
	return apperrors.NewInternalError(err)
}
