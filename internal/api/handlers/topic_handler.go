package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// TopicHandler handles topic listing, AI research, review, and deletion.
// Research is the quota-gated path: the daily limit is checked before the
// AI call and usage is recorded only after the call succeeds, so a failed
// call never consumes quota.
type TopicHandler struct {
	topicService   services.TopicService
	projectService services.ProjectService
	usageService   services.UsageService
	contentService services.ContentService
	aiService      services.AIService
	cache          services.CacheService
}

func NewTopicHandler(
	topicService services.TopicService,
	projectService services.ProjectService,
	usageService services.UsageService,
	contentService services.ContentService,
	aiService services.AIService,
	cache services.CacheService,
) *TopicHandler {
	return &TopicHandler{
		topicService:   topicService,
		projectService: projectService,
		usageService:   usageService,
		contentService: contentService,
		aiService:      aiService,
		cache:          cache,
	}
}

const topicsCacheTTL = 5 * time.Minute

type researchRequest struct {
	ProjectID string `json:"project_id"`
}

type updateTopicRequest struct {
	Status          models.TopicStatus `json:"status"`
	GenerateContent bool               `json:"generate_content"`
}

type rateLimitResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
}

func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projectID, err := uuid.Parse(r.URL.Query().Get("project"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Project ID required")
		return
	}

	if h.cache != nil {
		if cached, err := h.cache.Get(r.Context(), services.TopicsCacheKey(projectID)); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write([]byte(cached))
			return
		}
	}

	topics, err := h.topicService.ListTopics(r.Context(), projectID, user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), services.TopicsCacheKey(projectID), topics, topicsCacheTTL)
	}

	respondWithJSON(w, http.StatusOK, topics)
}

// ResearchTopics runs the quota-gated research flow for a project.
func (h *TopicHandler) ResearchTopics(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	check, err := h.usageService.CanResearch(r.Context(), user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !check.Allowed {
		respondWithJSON(w, http.StatusTooManyRequests, rateLimitResponse{
			Error:     "Rate limit exceeded",
			Message:   fmt.Sprintf("You've reached your daily limit of %d research requests. Resets at midnight.", check.Limit),
			Remaining: 0,
			Limit:     check.Limit,
		})
		return
	}

	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Project ID required")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), projectID, user.ID)
	if err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	suggestions, err := h.aiService.ResearchTrendingTopics(r.Context(), project.Name, &user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Research failed")
		return
	}

	// The AI call succeeded; one research unit is consumed even if the
	// reply parsed to nothing.
	if err := h.usageService.IncrementResearch(r.Context(), user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(suggestions) == 0 {
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "No topics found. Please try again."})
		return
	}

	topics, err := h.topicService.SaveSuggestions(r.Context(), projectID, user.ID, suggestions)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.invalidateTopics(r, projectID)

	respondWithJSON(w, http.StatusCreated, topics)
}

// UpdateTopic changes a topic's review status; approving with
// generate_content=true also runs the quota-gated generation flow.
func (h *TopicHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	topicID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid topic ID")
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	topic, err := h.topicService.GetTopic(r.Context(), topicID, user.ID)
	if err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Topic not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	shouldGenerate := req.GenerateContent && req.Status == models.TopicApproved

	if shouldGenerate {
		check, err := h.usageService.CanGenerate(r.Context(), user.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !check.Allowed {
			respondWithJSON(w, http.StatusTooManyRequests, rateLimitResponse{
				Error:     "Rate limit exceeded",
				Message:   fmt.Sprintf("You've reached your daily limit of %d content generations. Resets at midnight.", check.Limit),
				Remaining: 0,
				Limit:     check.Limit,
			})
			return
		}
	}

	if err := h.topicService.UpdateStatus(r.Context(), topicID, user.ID, req.Status); err != nil {
		if err == errors.ErrInvalidInput {
			respondWithError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Update failed")
		return
	}

	if shouldGenerate {
		niche := "general"
		if project, err := h.projectService.GetProject(r.Context(), topic.ProjectID, user.ID); err == nil {
			niche = project.Name
		}

		content, err := h.aiService.GenerateLinkedInPost(r.Context(), topic.Topic, niche, &user.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Generation failed")
			return
		}

		if err := h.usageService.IncrementGenerate(r.Context(), user.ID); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if _, err := h.contentService.SavePost(r.Context(), topic.Topic, content, topic.ID, topic.ProjectID, user.ID); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := h.topicService.UpdateStatus(r.Context(), topicID, user.ID, models.TopicGenerated); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	h.invalidateTopics(r, topic.ProjectID)

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	topicID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid topic ID")
		return
	}

	topic, err := h.topicService.GetTopic(r.Context(), topicID, user.ID)
	if err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Topic not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.topicService.DeleteTopic(r.Context(), topicID, user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	h.invalidateTopics(r, topic.ProjectID)

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TopicHandler) invalidateTopics(r *http.Request, projectID uuid.UUID) {
	if h.cache != nil {
		h.cache.Delete(r.Context(), services.TopicsCacheKey(projectID))
	}
}
