package ai

import (
	"WhatToDo-App/internal/domain/helper"
	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/domain/repository"
	"context"
	"fmt"
	"log"
	"strings"
)

// contentGenerator はGeminiClientの生成APIを抽象化したもの
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, opts GenerateOptions) (*GenerateResult, error)
}

// geminiActivityCurator はGemini APIを使用してActivityCurationRepositoryを実装
type geminiActivityCurator struct {
	client contentGenerator
}

// NewGeminiActivityCurator は新しいgeminiActivityCuratorインスタンスを作成
func NewGeminiActivityCurator(client *GeminiClient) repository.ActivityCurationRepository {
	return &geminiActivityCurator{
		client: client,
	}
}

// FindActivities は検索条件からアクティビティを検索し、カテゴリ別にまとめて返す
// 失敗はすべて CurationError として返し、リトライは行わない
func (g *geminiActivityCurator) FindActivities(ctx context.Context, criteria model.Criteria, unit model.UnitSystem, refinement string) (*model.SearchResult, error) {
	prompt := g.buildActivityPrompt(criteria, unit, refinement)

	log.Printf("🤖 Gemini APIでアクティビティを検索中... (場所: %s)", criteria.Location)

	result, err := g.client.GenerateContent(ctx, prompt, GenerateOptions{
		EnableSearch: true,
		EnableMaps:   true,
	})
	if err != nil {
		log.Printf("❌ Gemini API呼び出しエラー: %v", err)
		return nil, model.NewCurationError(fmt.Errorf("Gemini API呼び出しエラー: %w", err))
	}

	if len(result.WebSearchQueries) > 0 {
		log.Printf("🔍 検索クエリ: %s", strings.Join(result.WebSearchQueries, ", "))
	}

	activities, err := helper.ParseActivities(result.Text)
	if err != nil {
		log.Printf("❌ アクティビティ応答の解析に失敗 (finishReason: %s): %v", result.FinishReason, err)
		return nil, model.NewCurationError(err)
	}

	categorized := helper.GroupByCategory(activities)

	log.Printf("✅ アクティビティ検索完了: %d件 (%dカテゴリ, 出典%d件)", len(activities), categorized.Len(), len(result.GroundingChunks))
	for _, chunk := range result.GroundingChunks {
		if source := chunk.Source(); source != nil {
			log.Printf("🔗 出典: %s (%s)", source.Title, source.URI)
		}
	}

	return &model.SearchResult{
		Activities:      categorized,
		GroundingChunks: result.GroundingChunks,
	}, nil
}

// buildActivityPrompt は検索条件からアクティビティ検索用プロンプトを構築
func (g *geminiActivityCurator) buildActivityPrompt(criteria model.Criteria, unit model.UnitSystem, refinement string) string {
	ageGroup := "Activities suitable for all ages, including those under 21"
	if criteria.IsAdultsOnly() {
		ageGroup = "All attendees must be over 21"
	}

	includeRestaurants := "No"
	if criteria.IncludeRestaurants {
		includeRestaurants = "Yes"
	}

	if strings.TrimSpace(refinement) == "" {
		refinement = model.NoRefinementText
	}

	searchArea := ""
	if area, ok := helper.BuildSearchArea(criteria, unit); ok {
		searchArea = fmt.Sprintf("\n- Search Area (bounding box): %s", area.Describe())
	}

	prompt := fmt.Sprintf(`You are "What To Do?", an expert AI assistant for finding personalized activities. Based on the following criteria, find and return a large, diverse list of suitable local activities. Use Google Search and Google Maps to find up-to-date and relevant information.

**Goal:** Provide as many high-quality, relevant results as possible (aim for 15-20+ if available).

**Criteria:**
- Location: %s
- Maximum Travel Distance: %d %s%s
- Number of People: %d
- Age Group: %s
- Budget per Person: Approximately %s
- Desired Duration: %s
- Include Restaurants in suggestions: %s

**Refinement:**
%s

**Output Format:**
Return your findings strictly as a single JSON array of activity objects. Do not include any explanatory text or markdown formatting like `+"```json"+`.
Each object in the array represents a single activity and must have the following properties:
- "activityName": string (The name of the activity or venue.)
- "costPerPerson": string (An estimated cost per person, e.g., "$20-30" or "Free".)
- "durationEstimate": string (An estimated time to complete the activity, e.g., "1-2 hours".)
- "websiteLink": string (A direct URL to the official website or listing for the activity.)
- "mapsLink": string (A direct Google Maps URL for the location.)
- "description": string (A brief, engaging summary of the activity or venue.)
- "category": string (A relevant category for the activity, e.g., "Outdoor Adventures", "Food & Dining", "Arts & Culture".)

Example structure:
[
  { "activityName": "City Park Hike", "costPerPerson": "$0", "durationEstimate": "2-3 hours", "websiteLink": "https://example.com/park", "mapsLink": "https://maps.google.com/...", "description": "A beautiful hike with scenic views.", "category": "Outdoor Adventures" },
  { "activityName": "Local Taco Tour", "costPerPerson": "$40", "durationEstimate": "3 hours", "websiteLink": "https://example.com/tacos", "mapsLink": "https://maps.google.com/...", "description": "Explore the best tacos in the city.", "category": "Food & Dining" }
]`,
		criteria.Location,
		criteria.Distance,
		unit.DistanceLabel(),
		searchArea,
		criteria.People,
		ageGroup,
		criteria.Budget,
		criteria.Duration,
		includeRestaurants,
		refinement)

	return prompt
}
