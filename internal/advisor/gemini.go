package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"dream/internal/logger"
	"dream/internal/models"
)

// generator is the part of *genai.GenerativeModel the advisor calls.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini is the Advisor backed by Google's Gemini models.
type Gemini struct {
	client     *genai.Client
	text       generator
	vision     generator
	categories []string
	timeout    time.Duration
}

var _ Advisor = (*Gemini)(nil)

// Options configures NewGemini.
type Options struct {
	APIKey      string
	TextModel   string
	VisionModel string
	// Categories are the top-level expense names receipts are mapped onto.
	Categories []string
	Timeout    time.Duration
}

// NewGemini creates a client with one model for advice and one for receipts.
func NewGemini(ctx context.Context, opts Options) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	vision := client.GenerativeModel(opts.VisionModel)
	vision.ResponseMIMEType = "application/json"
	vision.ResponseSchema = receiptSchema()

	return &Gemini{
		client:     client,
		text:       client.GenerativeModel(opts.TextModel),
		vision:     vision,
		categories: opts.Categories,
		timeout:    opts.Timeout,
	}, nil
}

func receiptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":   {Type: genai.TypeNumber, Nullable: true},
			"date":     {Type: genai.TypeString, Nullable: true},
			"merchant": {Type: genai.TypeString, Nullable: true},
			"category": {Type: genai.TypeString, Nullable: true},
		},
	}
}

// Advise asks the text model about the ledger.
func (g *Gemini) Advise(ctx context.Context, query string, history []models.Transaction) string {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.text.GenerateContent(ctx, genai.Text(AdvicePrompt(query, history)))
	if err != nil {
		logger.Get().Errorw("advisor request failed", "error", err)
		return FailureAnswer
	}
	answer := strings.TrimSpace(responseText(resp))
	if answer == "" {
		return EmptyAnswer
	}
	return answer
}

// ParseReceipt reads amount, date, merchant and category off a receipt
// image. The category is whatever the model said; callers must check it.
func (g *Gemini) ParseReceipt(ctx context.Context, image []byte, mimeType string) (models.ReceiptData, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	resp, err := g.vision.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(ReceiptPrompt(g.categories)),
	)
	if err != nil {
		return models.ReceiptData{}, fmt.Errorf("receipt request: %w", err)
	}
	return decodeReceipt(responseText(resp))
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func decodeReceipt(text string) (models.ReceiptData, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ReceiptData{}, errors.New("receipt response was empty")
	}
	// Models occasionally wrap JSON in a fenced block despite the MIME type.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var data models.ReceiptData
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil {
		return models.ReceiptData{}, fmt.Errorf("decode receipt: %w", err)
	}
	return data, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
