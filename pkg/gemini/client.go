package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	json "github.com/goccy/go-json"
	"google.golang.org/genai"
)

// Models and sampling parameters for each request shape
const (
	textModel      = "gemini-2.5-flash"
	imageModel     = "gemini-2.0-flash-preview-image-generation"
	sentimentModel = "gemini-2.5-pro"

	textTemperature  = 0.7
	textTopP         = 0.9
	textMaxTokens    = 2048
	imageTemperature = 0.8
)

// askTemplate wraps user questions in the assistant instructions
const askTemplate = `You are a helpful AI assistant integrated into a Discord bot.
Please provide a clear, informative, and engaging response to the following question.
Keep your response conversational but informative. If the question requires a long answer,
structure it with appropriate formatting.

Question: %s`

// imageTemplate enhances raw prompts for better generation results
const imageTemplate = `Create a high-quality, detailed image of: %s.
The image should be visually appealing, well-composed, and suitable for general audiences.`

// sentimentSystemPrompt constrains the sentiment analysis output
const sentimentSystemPrompt = `You are a sentiment analysis expert.
Analyze the sentiment of the text and provide a rating
from 1 to 5 stars and a confidence score between 0 and 1.`

// refusalPhrases indicate the model declined an image request in prose
var refusalPhrases = []string{"cannot", "unable", "inappropriate"}

// Sentiment is the result of a sentiment analysis call
type Sentiment struct {
	Rating     float64 `json:"rating"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// Client is the gateway to the Gemini API
type Client struct {
	ai *genai.Client
}

var (
	client *Client
	once   sync.Once
)

// Init initializes the global Gemini client
func Init(ctx context.Context, apiKey string) (*Client, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(ctx, apiKey)
	})
	return client, err
}

// Get returns the global Gemini client
func Get() *Client {
	return client
}

// NewClient creates a new Gemini gateway
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, newError(KindInvalidAPIKey, "Gemini API key is not configured")
	}

	ai, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, classify(err)
	}

	return &Client{ai: ai}, nil
}

// Ask sends a question to the text model and returns the trimmed response.
// Exactly one provider call is made; failures are classified, never retried.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", newError(KindEmptyResponse, "question cannot be empty")
	}

	prompt := fmt.Sprintf(askTemplate, question)

	resp, err := c.ai.Models.GenerateContent(ctx, textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](textTemperature),
		TopP:            genai.Ptr[float32](textTopP),
		MaxOutputTokens: textMaxTokens,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error en la consulta a Gemini: %v", err), "Gemini")
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", newError(KindEmptyResponse, "empty response from Gemini AI")
	}
	return text, nil
}

// GenerateImage requests an image for prompt and writes the decoded bytes to
// imagePath. The model replies with interleaved text and image parts; the
// first inline image wins. A textual refusal with no image is escalated to a
// content-blocked failure instead of a generic one.
func (c *Client) GenerateImage(ctx context.Context, prompt, imagePath string) error {
	if strings.TrimSpace(prompt) == "" {
		return newError(KindContentBlocked, "image prompt cannot be empty")
	}

	logger.Info(fmt.Sprintf("Generando imagen con prompt: %s", prompt), "Gemini")

	enhanced := fmt.Sprintf(imageTemplate, prompt)

	resp, err := c.ai.Models.GenerateContent(ctx, imageModel, genai.Text(enhanced), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		Temperature:        genai.Ptr[float32](imageTemperature),
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error generando imagen: %v", err), "Gemini")
		return classify(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return newError(KindEmptyResponse, "no image candidates generated")
	}

	var textResponse strings.Builder
	imageWritten := false

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" {
			textResponse.WriteString(part.Text)
			logger.Info(fmt.Sprintf("Respuesta textual del modelo de imagen: %s", part.Text), "Gemini")
			continue
		}
		if !imageWritten && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			if err := os.WriteFile(imagePath, part.InlineData.Data, 0644); err != nil {
				logger.Error(fmt.Sprintf("Error guardando imagen: %v", err), "Gemini")
				return &Error{Kind: KindUnknown, Err: fmt.Errorf("failed to save generated image: %w", err)}
			}
			logger.Info(fmt.Sprintf("Imagen guardada en: %s", imagePath), "Gemini")
			imageWritten = true
		}
	}

	if !imageWritten {
		lower := strings.ToLower(textResponse.String())
		for _, phrase := range refusalPhrases {
			if strings.Contains(lower, phrase) {
				return newError(KindContentBlocked, "image generation was blocked by content filters")
			}
		}
		return newError(KindEmptyResponse, "no image data received from Gemini AI")
	}

	return nil
}

// AnalyzeSentiment rates the sentiment of text from 1 to 5 stars with a
// confidence score, using a JSON-schema constrained call.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error) {
	resp, err := c.ai.Models.GenerateContent(ctx, sentimentModel, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(sentimentSystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"rating":     {Type: genai.TypeNumber},
				"confidence": {Type: genai.TypeNumber},
				"summary":    {Type: genai.TypeString},
			},
			Required: []string{"rating", "confidence", "summary"},
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error en el análisis de sentimiento: %v", err), "Gemini")
		return nil, classify(err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, newError(KindEmptyResponse, "empty response from sentiment analysis model")
	}

	var result Sentiment
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &Error{Kind: KindUnknown, Err: fmt.Errorf("decoding sentiment response: %w", err)}
	}
	return &result, nil
}

// Close releases the gateway. The SDK client is plain HTTP with no
// long-lived connection, so there is nothing to tear down.
func (c *Client) Close() error {
	return nil
}
