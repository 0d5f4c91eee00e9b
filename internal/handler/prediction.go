package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"movie-rating-service/internal/domain"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "IMDb Rating Classification API",
		"version": apiVersion,
		"endpoints": gin.H{
			"/health":     "Health check",
			"/predict":    "Predict rating category",
			"/model-info": "Model information",
		},
	})
}

// Health reports file presence only; it never triggers a model load.
func (h *Handler) Health(c *gin.Context) {
	st := h.source.Stat()

	status := "healthy"
	if !st.ModelExists {
		status = "model_missing"
	}

	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:         status,
		ModelPath:      st.ModelPath,
		ModelExists:    st.ModelExists,
		MetadataExists: st.MetadataExists,
	})
}

// ModelInfo forces a load and returns the metadata document verbatim.
func (h *Handler) ModelInfo(c *gin.Context) {
	artifact, err := h.source.Get()
	if err != nil {
		log.WithError(err).Error("model info failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if artifact.Metadata == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No metadata available"})
		return
	}

	c.JSON(http.StatusOK, artifact.Metadata.Document)
}

func (h *Handler) Predict(c *gin.Context) {
	var req domain.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.predictionUC.Predict(c.Request.Context(), req.Movies)
	if err != nil {
		log.WithError(err).Error("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
