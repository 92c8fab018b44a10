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

type creatomateRenderRequest struct {
	TemplateID    string                 `json:"template_id"`
	Modifications map[string]interface{} `json:"modifications"`
}

type creatomateRenderResponse []struct {
	URL string `json:"url"`
}

type creatomateRenderSubmitter struct {
	ContentFetcher
	logger           outbound.LoggerPort
	creatomateConfig *config.CreatomateConfig
}

func NewCreatomateRenderSubmitter(contentFetcher ContentFetcher, creatomateConfig *config.CreatomateConfig, logger outbound.LoggerPort) outbound.RenderSubmitterPort {
	return &creatomateRenderSubmitter{
		logger:           logger,
		ContentFetcher:   contentFetcher,
		creatomateConfig: creatomateConfig,
	}
}

func (r *creatomateRenderSubmitter) Submit(ctx context.Context, request outbound.SubmitRenderRequest) (*outbound.RenderSubmission, error) {
	req, err := r.getRequest(ctx, request)
	if err != nil {
		r.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	rawRes, err := r.FetchContent(req)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			if message := renderErrorMessage(httpErr.Body); message != "" {
				return nil, errors.New(message)
			}
			return nil, fmt.Errorf("Failed to start the render job: %s", httpErr.Status)
		}
		return nil, err
	}

	var renderRes creatomateRenderResponse
	if err = json.Unmarshal(rawRes, &renderRes); err != nil {
		r.logger.Error(err, "Failed to unmarshal the response")
		return nil, err
	}

	if len(renderRes) == 0 || renderRes[0].URL == "" {
		err = errors.New("Creatomate render response contains no video URL")
		r.logger.Error(err, "Unexpected response shape")
		return nil, err
	}

	return &outbound.RenderSubmission{URL: renderRes[0].URL}, nil
}

// renderErrorMessage digs the endpoint's own error text out of a failure
// body. Creatomate reports errors both as a bare object and as an array.
func renderErrorMessage(body string) string {
	var asArray []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &asArray); err == nil && len(asArray) > 0 && asArray[0].Message != "" {
		return asArray[0].Message
	}

	var asObject struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &asObject); err == nil && asObject.Message != "" {
		return asObject.Message
	}

	return ""
}

func (r *creatomateRenderSubmitter) getRequest(ctx context.Context, request outbound.SubmitRenderRequest) (*http.Request, error) {
	reqBody := creatomateRenderRequest{
		TemplateID:    request.TemplateID,
		Modifications: request.Modifications,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		r.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.creatomateConfig.RenderURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		r.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization": "Bearer " + r.creatomateConfig.ApiKey,
		"Content-Type":  "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
