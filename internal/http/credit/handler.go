package credit

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	clientstore "github.com/ricardomaia/credo/internal/client/store"
	"github.com/ricardomaia/credo/internal/credit"
)

type Handler struct {
	analyzer *credit.Analyzer
	clients  *clientstore.Store
}

func NewHandler(analyzer *credit.Analyzer, clients *clientstore.Store) *Handler {
	return &Handler{
		analyzer: analyzer,
		clients:  clients,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/analyze", h.analyze)
}

type analyzeRequest struct {
	ClientID     string `json:"client_id"`
	AnalysisDate string `json:"analysis_date,omitempty"`
}

type analyzeResponse struct {
	Approved bool    `json:"approved"`
	Message  string  `json:"message"`
	Limit    float64 `json:"limit"`
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ClientID == "" {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}

	analysisDate := time.Now().UTC().Truncate(24 * time.Hour)

	if req.AnalysisDate != "" {
		parsed, err := time.Parse(time.DateOnly, req.AnalysisDate)
		if err != nil {
			http.Error(w, "invalid analysis_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		analysisDate = parsed
	}

	c, err := h.clients.GetClient(r.Context(), req.ClientID)
	if err != nil {
		if errors.Is(err, clientstore.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	// Fetch a superset of the analysis window; the analyzer applies the
	// strict cutoff itself.
	txs, err := h.clients.ListTransactions(r.Context(), c.ID, analysisDate.AddDate(0, -3, 0))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	result, err := h.analyzer.AnalyzeClient(r.Context(), c, txs, analysisDate)
	if err != nil {
		if errors.Is(err, credit.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "analysis failed", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := analyzeResponse{
		Approved: result.Approved,
		Message:  result.Message,
		Limit:    result.Limit,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
