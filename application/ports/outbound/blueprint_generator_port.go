package outbound

import (
	"context"

	"generate-video-api/domain"
)

// BlueprintGeneratorPort turns a user topic into a video blueprint: the
// text modifications for the render template plus one image prompt per scene.
type BlueprintGeneratorPort interface {
	Generate(ctx context.Context, topic string) (*domain.Blueprint, error)
}
