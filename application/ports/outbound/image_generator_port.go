package outbound

import "context"

// ImageGeneratorPort renders a single still image from a scene prompt and
// returns the URL where the hosted image can be fetched.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
