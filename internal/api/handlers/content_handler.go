package handlers

import (
	"net/http"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// postResponse pairs a generated post with its quality report.
type postResponse struct {
	Post    *models.GeneratedContent `json:"post"`
	Quality *services.QualityReport  `json:"quality"`
}

func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if rawProject := r.URL.Query().Get("project"); rawProject != "" {
		projectID, err := uuid.Parse(rawProject)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid project ID")
			return
		}
		posts, err := h.contentService.ListPostsByProject(r.Context(), projectID, user.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondWithJSON(w, http.StatusOK, posts)
		return
	}

	posts, err := h.contentService.ListPosts(r.Context(), user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, posts)
}

func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.contentService.GetPost(r.Context(), postID, user.ID)
	if err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, postResponse{
		Post:    post,
		Quality: services.AnalyzePost(post.Content),
	})
}
