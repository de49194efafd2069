package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MauItu/inventario-alimentos/entity"
)

const planJSON = `{"recipes":[{"day":"Monday","title":"Arroz con pollo","ingredients":["1 cup of rice","200g of chicken"],"steps":["Cook the rice","Saute the chicken"]}]}`

func TestParseRecipePlan(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		recipes, err := ParseRecipePlan(planJSON)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Monday", recipes[0].Day)
		assert.Equal(t, "Arroz con pollo", recipes[0].Title)
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		recipes, err := ParseRecipePlan("```json\n" + planJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
	})

	t.Run("bare fences", func(t *testing.T) {
		recipes, err := ParseRecipePlan("```\n" + planJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
	})

	t.Run("not JSON is an error", func(t *testing.T) {
		_, err := ParseRecipePlan("here are your recipes!")
		assert.Error(t, err)
	})

	t.Run("empty recipe list is an error", func(t *testing.T) {
		_, err := ParseRecipePlan(`{"recipes":[]}`)
		assert.Error(t, err)
	})
}

func TestGenerateRecipes(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := ChatResponse{Choices: []Choice{{Message: Message{Role: "assistant", Content: planJSON}}}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(entity.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o"})

	items := []entity.Item{{
		Name:      "Milk",
		Category:  entity.CategoryLacteos,
		Quantity:  2,
		Unit:      entity.UnitL,
		EntryDate: time.Now(),
	}}

	recipes, err := client.GenerateRecipes(context.Background(), items)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)

	// The prompt must carry the pantry contents
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, "Milk (2 l)")
}

func TestGenerateRecipesRequiresItems(t *testing.T) {
	client := NewClient(entity.OpenAIConfig{APIKey: "test-key", BaseURL: "http://unused", Model: "gpt-4o"})
	_, err := client.GenerateRecipes(context.Background(), nil)
	assert.Error(t, err)
}

func TestChatWithoutAPIKey(t *testing.T) {
	client := NewClient(entity.OpenAIConfig{BaseURL: "http://unused", Model: "gpt-4o"})
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
