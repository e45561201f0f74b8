package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	clientstore "github.com/ricardomaia/credo/internal/client/store"
	"github.com/ricardomaia/credo/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	clients   *clientstore.Store
}

func NewHandler(importSvc *importer.Service, clients *clientstore.Store) *Handler {
	return &Handler{
		importSvc: importSvc,
		clients:   clients,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{clientID}", h.importStatement)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	if _, err := h.clients.GetClient(r.Context(), clientID); err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	txs, err := h.importSvc.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.clients.CreateTransactions(r.Context(), clientID, txs); err != nil {
		http.Error(w, "failed to store transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
