package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

const DefaultModel = "gemini-2.5-flash"

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Recommender asks a Gemini model for one menu suggestion matching a mood.
type Recommender struct {
	models   generator
	model    string
	shopName string
}

// New returns a Recommender. An empty apiKey is not an error here: every
// call then reports interfaces.ErrMissingAPIKey so the caller can fall back.
func New(ctx context.Context, apiKey, model, shopName string) (*Recommender, error) {
	if model == "" {
		model = DefaultModel
	}
	r := &Recommender{model: model, shopName: shopName}
	if apiKey == "" {
		return r, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	r.models = client.Models
	return r, nil
}

func (r *Recommender) Recommend(ctx context.Context, mood string, menuNames []string) (string, error) {
	if r.models == nil {
		return "", interfaces.ErrMissingAPIKey
	}

	resp, err := r.models.GenerateContent(ctx, r.model, genai.Text(Prompt(r.shopName, mood, menuNames)), nil)
	if err != nil {
		return "", fmt.Errorf("generate recommendation: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func Prompt(shopName, mood string, menuNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly barista at %q.\n", shopName)
	fmt.Fprintf(&b, "The customer is feeling: %q.\n", mood)
	fmt.Fprintf(&b, "Our menu includes: %s.\n\n", strings.Join(menuNames, ", "))
	b.WriteString("Recommend ONE item from the menu that fits their mood.\n")
	b.WriteString("Keep it short, sweet, and fun (max 2 sentences).\n")
	b.WriteString(`Format: "I recommend the [Item Name] because [reason]."`)
	return b.String()
}
