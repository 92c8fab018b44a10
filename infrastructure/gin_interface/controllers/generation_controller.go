package controllers

import (
	"errors"
	"net/http"

	"github.com/donovanhide/eventsource"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"generate-video-api/application/ports/inbound"
	"generate-video-api/application/ports/outbound"
	"generate-video-api/domain"
	"generate-video-api/infrastructure/gin_interface/dto"
)

type GenerationController interface {
	CreateGeneration(c *gin.Context)
	GetGeneration(c *gin.Context)
	StartRender(c *gin.Context)
	StreamEvents(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type generationController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.GenerationOrchestratorPort
	eventServer  *eventsource.Server
}

func NewGenerationController(
	logger outbound.LoggerPort,
	orchestrator inbound.GenerationOrchestratorPort,
	eventServer *eventsource.Server,
) GenerationController {
	return &generationController{
		logger:       logger,
		orchestrator: orchestrator,
		eventServer:  eventServer,
	}
}

func (s *generationController) CreateGeneration(c *gin.Context) {
	var request dto.CreateGenerationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		err = c.AbortWithError(http.StatusBadRequest, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	generationID := uuid.NewString()

	generation, err := s.orchestrator.StartGeneration(generationID, request.Prompt)
	if err != nil {
		err = c.AbortWithError(http.StatusInternalServerError, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	c.JSON(http.StatusAccepted, toGenerationResponse(generation))
}

func (s *generationController) GetGeneration(c *gin.Context) {
	generation, err := s.orchestrator.GetGeneration(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGenerationResponse(generation))
}

func (s *generationController) StartRender(c *gin.Context) {
	generation, err := s.orchestrator.StartRender(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, toGenerationResponse(generation))
}

// StreamEvents hands the connection over to the SSE server once the
// generation is known to exist. Every generation ID is its own channel.
func (s *generationController) StreamEvents(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.orchestrator.GetGeneration(id); err != nil {
		s.handleError(c, err)
		return
	}

	s.eventServer.Handler(id)(c.Writer, c.Request)
}

func (s *generationController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/generations", s.CreateGeneration)
	g.GET("/api/generations/:id", s.GetGeneration)
	g.POST("/api/generations/:id/render", s.StartRender)
	g.GET("/api/generations/:id/events", s.StreamEvents)
}

func (s *generationController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, outbound.ErrGenerationNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, inbound.ErrGenerationBusy), errors.Is(err, inbound.ErrPreviewNotReady):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		abortErr := c.AbortWithError(http.StatusInternalServerError, err)
		if abortErr != nil {
			s.logger.Error(abortErr, "failed to abort with error")
		}
	}
}

func toGenerationResponse(generation domain.Generation) dto.GenerationResponse {
	response := dto.GenerationResponse{
		GenerationID: generation.ID,
		Prompt:       generation.Prompt,
		Phase:        string(generation.Phase),
		Message:      generation.Message,
		Loading:      generation.Loading,
		VideoURL:     generation.FinalVideoURL,
		CreatedAt:    generation.CreatedAt,
		UpdatedAt:    generation.UpdatedAt,
	}
	if generation.Preview != nil {
		response.Preview = &dto.PreviewResponse{
			TextModifications: generation.Preview.TextModifications,
			Images:            generation.Preview.Images,
		}
	}
	return response
}
