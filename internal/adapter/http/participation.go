package httpadapter

import (
	"net/http"

	"groupbuy/internal/api"
)

// handleJoin adds the requesting user to a campaign. Business rejections map
// to 4xx codes; an exhausted retry budget maps to 503 and may be retried.
func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req api.JoinRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Join(r.Context(), id, req.UserID, req.Variant)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.FromJoinResult(res, h.now()))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req api.CancelRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Cancel(r.Context(), id, req.ActorID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.FromCampaign(c, h.now()))
}

func (h *Handler) handleParticipants(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.Participants(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := api.ParticipantsResponse{Items: make([]api.Entry, 0, len(entries))}
	for _, e := range entries {
		resp.Items = append(resp.Items, api.FromEntry(e))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	entry, c, err := h.svc.Revoke(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.RevokeResponse{
		Entry:    api.FromEntry(entry),
		Campaign: api.FromCampaign(c, h.now()),
	})
}
