package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Sandeep0076/budget-sage/internal/logging"
)

// GeminiVision calls the Gemini multimodal API to read receipt images.
type GeminiVision struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	timeout   time.Duration
	logger    logging.Logger
}

// NewGeminiVision creates a vision client. modelName selects the Gemini
// model; it must support image input.
func NewGeminiVision(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger logging.Logger) (*GeminiVision, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiVision{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiVision) Close() error {
	return g.client.Close()
}

// ExtractText sends the image and prompt to the model and returns the raw
// response text.
func (g *GeminiVision) ExtractText(ctx context.Context, imageFormat string, image []byte, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.WithField(logging.FieldModel, g.modelName).Debug("Sending receipt image to model")

	resp, err := g.model.GenerateContent(ctx,
		genai.ImageData(imageFormat, image),
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part type from model")
	}

	return string(text), nil
}
