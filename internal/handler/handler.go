package handler

import (
	"github.com/gin-gonic/gin"

	"movie-rating-service/internal/usecase"
)

const apiVersion = "1.0.0"

type Handler struct {
	predictionUC *usecase.PredictionUseCase
	source       usecase.ArtifactSource
}

func New(predictionUC *usecase.PredictionUseCase, source usecase.ArtifactSource) *Handler {
	return &Handler{predictionUC: predictionUC, source: source}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/model-info", h.ModelInfo)
	r.POST("/predict", h.Predict)
}
