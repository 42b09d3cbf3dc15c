package httpadapter

import (
	"net/http"
	"strconv"

	"groupbuy/internal/api"
	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// handleListCampaigns returns a page of campaigns. It accepts optional
// `status`, `type`, `sort`, `page` and `page_size` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		qs = r.URL.Query()
		q  = port.ListQuery{Sort: port.SortKey(qs.Get("sort"))}
	)
	if s := qs.Get("status"); s != "" {
		status := domain.Status(s)
		q.Status = &status
	}
	if t := qs.Get("type"); t != "" {
		typ := domain.CampaignType(t)
		q.Type = &typ
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"page", &q.Page}, {"page_size", &q.PageSize}} {
		raw := qs.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, r, &domain.ValidationError{Field: p.name, Message: "must be a positive integer"})
			return
		}
		*p.dst = n
	}

	page, err := h.svc.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.FromPage(page, h.now()))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.FromCampaign(c, h.now()))
}

// handleCreateCampaign creates a campaign and auto-joins its creator.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req api.CreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Create(r.Context(), req.Spec())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+c.ID.String())
	h.writeJSON(w, http.StatusCreated, api.FromCampaign(c, h.now()))
}
