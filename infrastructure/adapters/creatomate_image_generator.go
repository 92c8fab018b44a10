package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
)

type creatomateImageRequest struct {
	Prompt       string `json:"prompt"`
	OutputWidth  int    `json:"output_width"`
	OutputHeight int    `json:"output_height"`
}

type creatomateImageResponse []struct {
	URL string `json:"url"`
}

type creatomateImageGenerator struct {
	ContentFetcher
	logger           outbound.LoggerPort
	creatomateConfig *config.CreatomateConfig
	outputWidth      int
	outputHeight     int
}

func NewCreatomateImageGenerator(contentFetcher ContentFetcher, creatomateConfig *config.CreatomateConfig, pipelineConfig *config.PipelineConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &creatomateImageGenerator{
		logger:           logger,
		ContentFetcher:   contentFetcher,
		creatomateConfig: creatomateConfig,
		outputWidth:      pipelineConfig.ImageOutputWidth,
		outputHeight:     pipelineConfig.ImageOutputHeight,
	}
}

func (i *creatomateImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req, err := i.getRequest(ctx, prompt)
	if err != nil {
		i.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}

	rawRes, err := i.FetchContent(req)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return "", fmt.Errorf("Creatomate image API error: %s: %s", httpErr.Status, httpErr.Body)
		}
		return "", err
	}

	var imageRes creatomateImageResponse
	if err = json.Unmarshal(rawRes, &imageRes); err != nil {
		i.logger.Error(err, "Failed to unmarshal the response")
		return "", err
	}

	if len(imageRes) == 0 || imageRes[0].URL == "" {
		err = errors.New("Creatomate image response contains no image URL")
		i.logger.Error(err, "Unexpected response shape")
		return "", err
	}

	return imageRes[0].URL, nil
}

func (i *creatomateImageGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := creatomateImageRequest{
		Prompt:       prompt,
		OutputWidth:  i.outputWidth,
		OutputHeight: i.outputHeight,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		i.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", i.creatomateConfig.ImageURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		i.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization": "Bearer " + i.creatomateConfig.ApiKey,
		"Content-Type":  "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
