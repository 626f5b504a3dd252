package internal

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/fazecat/newspulse/Internal/archive"
	datafeed "github.com/fazecat/newspulse/Internal/database"
	"github.com/fazecat/newspulse/Internal/pipeline"
	"github.com/fazecat/newspulse/Internal/utils/config"
)

type API struct {
	Config     *config.Config
	Source     archive.HeadlineSource
	JWTManager *JWTManager
}

type tokenRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// HandleGenerateToken mints the bearer token the protected routes require.
// Callers must present the shared admin secret; with no secret configured
// the endpoint refuses to issue tokens at all.
func (api *API) HandleGenerateToken(w http.ResponseWriter, r *http.Request) {
	adminSecret := os.Getenv("API_ADMIN_SECRET")
	if adminSecret == "" {
		WriteError(w, http.StatusServiceUnavailable, "Token issuance not configured")
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Secret != adminSecret {
		WriteError(w, http.StatusUnauthorized, "Invalid admin secret")
		return
	}
	if req.UserID == "" {
		req.UserID = "admin"
	}

	token, err := api.JWTManager.GenerateToken(req.UserID, req.Email, 24)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"expires_in": 24 * 3600,
	})
}

// HandleGetWeeklySentiment serves the stored weekly mean-sentiment series.
func (api *API) HandleGetWeeklySentiment(w http.ResponseWriter, r *http.Request) {
	points, err := datafeed.GetWeeklySentiment(r.Context())
	if err != nil {
		log.Printf("Error fetching weekly sentiment: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch weekly sentiment")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"series": points,
		"count":  len(points),
	})
}

// HandleGetArticles serves stored articles, newest window first capped by
// the limit query parameter (default 100).
func (api *API) HandleGetArticles(w http.ResponseWriter, r *http.Request) {
	limit := int32(100)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = int32(n)
		}
	}

	articles, err := datafeed.GetArticles(r.Context(), limit)
	if err != nil {
		log.Printf("Error fetching articles: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

// HandleHarvest runs the full pipeline for the configured window and
// replaces the stored articles with the fresh batch. Protected route: a
// harvest can run for a long time and hammers the upstream API.
func (api *API) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := pipeline.New(api.Config, api.Source).Run(ctx)
	if err != nil {
		log.Printf("Harvest failed: %v", err)
		WriteError(w, http.StatusBadGateway, "Harvest failed")
		return
	}

	if err := datafeed.ClearArticles(ctx); err != nil {
		log.Printf("Warning: could not clear previous harvest: %v", err)
	}
	if err := datafeed.SaveAnnotated(ctx, result.Annotated); err != nil {
		log.Printf("Error saving harvest: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to save harvest")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"articles_harvested": len(result.Annotated),
		"weekly_points":      len(result.Series),
		"series":             result.Series,
	})
}
