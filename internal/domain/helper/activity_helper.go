package helper

import (
	"WhatToDo-App/internal/domain/model"
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// codeFenceRegex は ```json ... ``` 形式（言語指定なしも可）のコードブロックを検出する
// 中身に ``` を含んでも切れないよう、最後のフェンスまでを対象にする
var codeFenceRegex = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*)```")

// StripCodeFence はコードブロックで囲まれている場合に中身だけを取り出す
// JSON配列で始まる応答はそのまま返す
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		return trimmed
	}
	if match := codeFenceRegex.FindStringSubmatch(text); len(match) > 1 && match[1] != "" {
		return strings.TrimSpace(match[1])
	}
	return trimmed
}

// ParseActivities はモデルの応答テキストをアクティビティ配列としてパースする
// 配列以外のJSONや途中で切れたJSONはエラーとし、部分的な結果は返さない
func ParseActivities(text string) ([]model.Activity, error) {
	body := strings.TrimSpace(StripCodeFence(text))
	if body == "" {
		return nil, fmt.Errorf("応答が空です")
	}
	if !strings.HasPrefix(body, "[") {
		return nil, fmt.Errorf("応答がJSON配列ではありません")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(body), &elements); err != nil {
		return nil, fmt.Errorf("アクティビティJSONのパースに失敗: %w", err)
	}

	activities := make([]model.Activity, 0, len(elements))
	for i, element := range elements {
		if bytes.Equal(bytes.TrimSpace(element), []byte("null")) {
			return nil, fmt.Errorf("%d番目の要素がnullです", i)
		}
		var activity model.Activity
		if err := json.Unmarshal(element, &activity); err != nil {
			return nil, fmt.Errorf("%d番目のアクティビティのパースに失敗: %w", i, err)
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

// GroupByCategory はアクティビティ配列をカテゴリごとにまとめる
func GroupByCategory(activities []model.Activity) *model.CategorizedActivities {
	categorized := model.NewCategorizedActivities()
	for _, activity := range activities {
		categorized.Append(activity)
	}
	return categorized
}
