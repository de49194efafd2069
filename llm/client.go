package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MauItu/inventario-alimentos/entity"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type Choice struct {
	Index   int     `json:"index"`
	Message Message `json:"message"`
}

type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Choices []Choice `json:"choices"`
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClient(cfg entity.OpenAIConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Chat sends the messages and returns the first choice content.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	reqBody := ChatRequest{
		Model:          c.model,
		Messages:       messages,
		MaxTokens:      2048,
		Temperature:    0.7,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}

type recipePlan struct {
	Recipes []entity.Recipe `json:"recipes"`
}

// GenerateRecipes asks the model for a 7-day lunch plan built from the
// given pantry items, one recipe per weekday.
func (c *Client) GenerateRecipes(ctx context.Context, items []entity.Item) ([]entity.Recipe, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no pantry items provided")
	}

	// Build the ingredient list for the prompt
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%g %s)", item.Name, item.Quantity, item.Unit))
	}

	prompt := fmt.Sprintf(`You are an expert chef. Using only the following ingredients: %s,
create 7 lunch recipes, one for each day of the week.
Each recipe must have a title, a list of ingredients with appropriate quantities and detailed preparation steps.
If basic staples are missing (such as salt or oil) you may suggest them.
Respond ONLY with valid JSON (no markdown formatting, no triple backticks) with this structure:
{
  "recipes": [
    {
      "day": "Monday",
      "title": "Recipe name",
      "ingredients": ["1 cup of rice", "200g of chicken"],
      "steps": ["Step 1: ...", "Step 2: ..."]
    }
  ]
}`, strings.Join(parts, ", "))

	messages := []Message{
		{Role: "system", Content: "You are a professional chef who creates recipes from a limited set of ingredients. Respond only with valid JSON without markdown formatting."},
		{Role: "user", Content: prompt},
	}

	content, err := c.Chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	plan, err := ParseRecipePlan(content)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ParseRecipePlan decodes the model output, tolerating markdown code
// fences the model sometimes wraps the JSON in despite instructions.
func ParseRecipePlan(content string) ([]entity.Recipe, error) {
	var plan recipePlan
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse recipe response: %w", err)
	}
	if len(plan.Recipes) == 0 {
		return nil, fmt.Errorf("recipe response contained no recipes")
	}
	return plan.Recipes, nil
}

func cleanJSONResponse(content string) string {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
