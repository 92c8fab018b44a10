package main

import (
	"fmt"
	"net/http"

	"github.com/donovanhide/eventsource"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"generate-video-api/application/services"
	"generate-video-api/config"
	"generate-video-api/infrastructure/adapters"
	"generate-video-api/infrastructure/gin_interface/controllers"
	"generate-video-api/middleware"
	mockgenerator "generate-video-api/mock"
	"generate-video-api/task_utils"
)

func main() {
	_ = godotenv.Load()

	serverConfig := config.GetServerConfig()
	geminiConfig := config.GetGeminiConfig()
	creatomateConfig := config.GetCreatomateConfig()
	templateConfig := config.GetTemplateConfig()

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	zeroLogger := adapters.NewZerologWrapper(serverConfig.LogLevel)

	warnings := config.CollectWarnings(geminiConfig, creatomateConfig, templateConfig)
	for _, warning := range warnings {
		zeroLogger.Warn(warning)
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	eventServer := eventsource.NewServer()
	defer eventServer.Close()

	httpClient := &http.Client{Timeout: pipelineConfig.HTTPTimeout}
	contentFetcher := adapters.NewContentFetcher(httpClient, zeroLogger)

	blueprintGenerator := adapters.NewGeminiBlueprintGenerator(contentFetcher, geminiConfig, zeroLogger)
	imageGenerator := adapters.NewCreatomateImageGenerator(contentFetcher, creatomateConfig, pipelineConfig, zeroLogger)
	renderSubmitter := adapters.NewCreatomateRenderSubmitter(contentFetcher, creatomateConfig, zeroLogger)

	if serverConfig.MockMode {
		zeroLogger.Warn("MOCK_MODE is enabled, external services are replaced with canned responses")
		blueprintGenerator, imageGenerator, renderSubmitter = mockgenerator.Init(pipelineConfig, zeroLogger)
	}

	generationStore := adapters.NewMemoryGenerationStore()
	progressPublisher := adapters.NewEventsourceProgressPublisher(eventServer, zeroLogger)

	imageQueue := task_utils.NewSequentialQueue(pipelineConfig.ImagePacing)

	previewGenerator := services.NewPreviewGenerator(zeroLogger, blueprintGenerator, imageGenerator, generationStore, progressPublisher, imageQueue)

	videoRenderer := services.NewVideoRenderer(zeroLogger, renderSubmitter, generationStore, progressPublisher, templateConfig, pipelineConfig)

	orchestrator := services.NewGenerationOrchestrator(zeroLogger, workerPool, generationStore, progressPublisher, previewGenerator, videoRenderer)

	generationController := controllers.NewGenerationController(zeroLogger, orchestrator, eventServer)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"warnings": warnings,
		})
	})

	generationController.RegisterRoutes(router)

	err = router.Run(serverConfig.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
