package http

import (
	"net/http"
	"time"

	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	commonhttp "github.com/AlibekovAA/notes-api/internal/common/http"
	"github.com/AlibekovAA/notes-api/internal/common/jwtverify"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	"github.com/AlibekovAA/notes-api/internal/note/domain"
	"github.com/AlibekovAA/notes-api/internal/note/service"
)

const (
	collectionPath = "/api/notes"
	itemPrefix     = "/api/notes/"
)

type noteRequest struct {
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Color    string   `json:"color"`
	Archived bool     `json:"archived"`
}

func (r noteRequest) toInput() service.NoteInput {
	return service.NoteInput{
		Content:  r.Content,
		Tags:     r.Tags,
		Color:    r.Color,
		Archived: r.Archived,
	}
}

type noteResponse struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Color     string     `json:"color"`
	OwnerID   string     `json:"ownerId"`
	Archived  bool       `json:"archived"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toResponse(n domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        string(n.ID),
		Content:   n.Content,
		Tags:      tags,
		Color:     n.Color,
		OwnerID:   n.OwnerID,
		Archived:  n.Archived,
		DeletedAt: n.DeletedAt,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type Handler struct {
	notes *service.NoteService
	log   *logger.Logger
}

// NewHandler serves the note routes. Every route sits behind the auth gate,
// so handlers can rely on claims being present in the request context.
func NewHandler(notes *service.NoteService, verifier jwtverify.TokenVerifier, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{notes: notes, log: log}
	auth := jwtverify.Middleware(verifier, log)
	timeout := commonhttp.WithTimeout(requestTimeout)

	mux := http.NewServeMux()
	mux.Handle(collectionPath, auth(timeout(h.collection)))
	mux.Handle(itemPrefix, auth(timeout(h.item)))
	return mux
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) item(w http.ResponseWriter, r *http.Request) {
	rawID, ok := commonhttp.ExtractIDFromPath(r.URL.Path, itemPrefix)
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeNotFound, "not found", nil, commonhttp.TraceIDFromContext(r.Context()))
		return
	}

	// Ids that cannot name a stored note are reported the same way as absent ones.
	if err := commonhttp.ValidateUUID(rawID); err != nil {
		commonhttp.HandleError(w, r, service.ErrNoteNotFound.WithCause(err), h.log)
		return
	}
	id := domain.ID(rawID)

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"user_id": claims.UserID,
			"action":  "note_create_invalid_json",
		}).Warnf("note create failed: invalid json: %v", err)
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidPayload.WithCause(err), h.log)
		return
	}

	note, err := h.notes.Create(r.Context(), claims.UserID, req.toInput())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, toResponse(note))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.List(r.Context(), claims.UserID)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toResponse(n))
	}
	commonhttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), claims.UserID, id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(note))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"user_id": claims.UserID,
			"note_id": string(id),
			"action":  "note_update_invalid_json",
		}).Warnf("note update failed: invalid json: %v", err)
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidPayload.WithCause(err), h.log)
		return
	}

	note, err := h.notes.Update(r.Context(), claims.UserID, id, req.toInput())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(note))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), claims.UserID, id); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteMessage(w, http.StatusOK, "Note deleted")
}

func (h *Handler) claims(w http.ResponseWriter, r *http.Request) (jwtverify.Claims, bool) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, h.log)
	}
	return claims, ok
}
