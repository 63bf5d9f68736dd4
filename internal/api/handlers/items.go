package handlers

import (
	"errors"
	"net/http"
	"time"
	"transit-items-service/internal/api/dto"
	"transit-items-service/internal/domain"
	"transit-items-service/internal/ports"
)

const deletedMessage = "Item deleted successfully"

// ItemHandler exposes the item CRUD endpoints.
type ItemHandler struct {
	Repo            ports.ItemRepository
	ShowErrorDetail bool
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.ListItems(r.Context())
	if err != nil {
		InternalError(w, r, err, "", h.ShowErrorDetail)
		return
	}

	res := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toItemResponse(it))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get never fails: an id without a leading integer is echoed as null.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(r)
	if !ok {
		writeJSON(w, r, http.StatusOK, unresolvedItem(r.PathValue("id"), "", ""))
		return
	}

	item, err := h.Repo.GetItem(r.Context(), id)
	if err != nil {
		InternalError(w, r, err, "", h.ShowErrorDetail)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeItemRequest(w, r)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}

	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := h.Repo.CreateItem(r.Context(), req.Name, req.Description)
	if errors.Is(err, domain.ErrNameRequired) {
		writeError(w, r, http.StatusBadRequest, "Name is required")
		return
	}
	if err != nil {
		InternalError(w, r, err, "", h.ShowErrorDetail)
		return
	}

	writeJSON(w, r, http.StatusCreated, toItemResponse(item))
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := decodeItemRequest(w, r)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}

	id, ok := parseItemID(r)
	if !ok {
		res := unresolvedItem(r.PathValue("id"), req.Name, req.Description)
		now := time.Now().UTC()
		res.UpdatedAt = &now
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	item, err := h.Repo.UpdateItem(r.Context(), id, req.Name, req.Description)
	if err != nil {
		InternalError(w, r, err, "", h.ShowErrorDetail)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemResponse(item))
}

// Delete reports success for any id.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(r)
	if !ok {
		writeJSON(w, r, http.StatusOK, dto.DeleteItemResponse{Message: deletedMessage})
		return
	}

	if err := h.Repo.DeleteItem(r.Context(), id); err != nil {
		InternalError(w, r, err, "", h.ShowErrorDetail)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteItemResponse{
		Message: deletedMessage,
		ID:      &id,
	})
}

func toItemResponse(it *domain.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// unresolvedItem fabricates a record for a path id with no leading integer.
// Placeholders quote the raw segment.
func unresolvedItem(raw, name, description string) dto.UnresolvedItemResponse {
	if name == "" {
		name = domain.PlaceholderName(raw)
	}
	if description == "" {
		description = domain.PlaceholderDescription(raw)
	}
	return dto.UnresolvedItemResponse{Name: name, Description: description}
}
