package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
	"generate-video-api/domain"
)

const blueprintInstructions = "Create a short promotional video plan for the topic: %s.\n" +
	"Respond with a single raw JSON object and nothing else. No markdown, no code fences, no commentary.\n" +
	"The object must have exactly two keys:\n" +
	"- \"text_modifications\": an object with the keys \"Title.text\" and \"Voiceover-1.text\" through " +
	"\"Voiceover-6.text\", holding a catchy title and one short voiceover sentence per scene\n" +
	"- \"image_prompts\": an object with the keys \"scene_1\" through \"scene_6\", each holding one vivid " +
	"English image description for that scene"

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type blueprintPayload struct {
	TextModifications map[string]interface{} `json:"text_modifications"`
	ImagePrompts      map[string]string      `json:"image_prompts"`
}

type geminiBlueprintGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiBlueprintGenerator(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.BlueprintGeneratorPort {
	return &geminiBlueprintGenerator{
		logger:         logger,
		ContentFetcher: contentFetcher,
		geminiConfig:   geminiConfig,
	}
}

func (g *geminiBlueprintGenerator) Generate(ctx context.Context, topic string) (*domain.Blueprint, error) {
	req, err := g.getRequest(ctx, topic)
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	rawRes, err := g.FetchContent(req)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return nil, fmt.Errorf("Gemini API error: %s", httpErr.Status)
		}
		return nil, err
	}

	var geminiRes geminiResponse
	if err = json.Unmarshal(rawRes, &geminiRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the response")
		return nil, err
	}

	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		err = errors.New("Gemini response is missing the generated text")
		g.logger.Error(err, "Unexpected response shape")
		return nil, err
	}
	text := geminiRes.Candidates[0].Content.Parts[0].Text

	var payload blueprintPayload
	if err = json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil {
		g.logger.Error(err, "Failed to parse the generated blueprint")
		return nil, fmt.Errorf("failed to parse the generated blueprint: %w", err)
	}

	prompts := make([]domain.ImagePrompt, 0, config.PromptSlotCount)
	for _, slot := range config.ImagePromptSlots() {
		promptText, ok := payload.ImagePrompts[slot]
		if !ok {
			continue
		}
		prompts = append(prompts, domain.ImagePrompt{Slot: slot, Text: promptText})
	}

	return &domain.Blueprint{
		TextModifications: payload.TextModifications,
		ImagePrompts:      prompts,
	}, nil
}

// stripCodeFences removes the markdown fence the model sometimes wraps its
// JSON in despite being told not to.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func (g *geminiBlueprintGenerator) getRequest(ctx context.Context, topic string) (*http.Request, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fmt.Sprintf(blueprintInstructions, topic)}}},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(g.geminiConfig.BaseURL, "/"),
		g.geminiConfig.Model,
		url.QueryEscape(g.geminiConfig.ApiKey))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
