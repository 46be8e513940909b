package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sandeep0076/budget-sage/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the AIClient interface against the Google Gemini
// API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a GeminiClient for the given API key and model
// name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// SuggestCategory asks the model to pick one of the offered categories for
// the item and returns the chosen category ID.
func (c *GeminiClient) SuggestCategory(ctx context.Context, item Item, options []CategoryOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	var choices strings.Builder
	for _, opt := range options {
		fmt.Fprintf(&choices, "%s: %s\n", opt.ID, opt.Name)
	}

	prompt := fmt.Sprintf(`Categorize the following purchase:
Item: %s
Amount: %s
Date: %s
Additional Info: %s

Pick exactly one category from this list (format "id: name"):
%s
Respond with a single line in this format:
Category-ID: [chosen id]`,
		item.Name,
		item.Amount,
		item.Date,
		item.Info,
		choices.String())

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	chosen := extractCategoryID(responseText)

	// Only IDs we actually offered count as an answer.
	for _, opt := range options {
		if opt.ID == chosen {
			c.logger.WithFields(
				logging.Field{Key: "item", Value: item.Name},
				logging.Field{Key: logging.FieldCategory, Value: opt.Name},
			).Debug("Gemini suggested category")
			return chosen, nil
		}
	}

	c.logger.WithField("response", responseText).Debug("Gemini returned no usable category")
	return "", nil
}

// extractCategoryID parses the model response for the "Category-ID:" line.
func extractCategoryID(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category-ID:") {
			id := strings.TrimSpace(strings.TrimPrefix(line, "Category-ID:"))
			id = strings.Trim(id, "[]")
			return strings.TrimSpace(id)
		}
	}
	return strings.TrimSpace(response)
}
