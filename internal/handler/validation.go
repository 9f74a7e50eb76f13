package handler

import (
	"WhatToDo-App/internal/domain/model"
	"strings"
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validateCriteria は検索条件の入力チェックを行う
func validateCriteria(c *model.Criteria) error {
	if len(strings.TrimSpace(c.Location)) < model.MinLocationLength {
		return &ValidationError{Field: "criteria.location", Message: "出発地点は3文字以上で指定してください"}
	}
	if c.Distance < model.MinDistance || c.Distance > model.MaxDistance {
		return &ValidationError{Field: "criteria.distance", Message: "距離は1から100の範囲で指定してください"}
	}
	if c.People < model.MinPeople {
		return &ValidationError{Field: "criteria.people", Message: "人数は1以上で指定してください"}
	}
	if !c.AgeRequirement.IsValid() {
		return &ValidationError{Field: "criteria.ageRequirement", Message: "ageRequirementは'under21'または'over21'を指定してください"}
	}
	if strings.TrimSpace(c.Budget) == "" {
		return &ValidationError{Field: "criteria.budget", Message: "予算は必須です"}
	}
	if strings.TrimSpace(c.Duration) == "" {
		return &ValidationError{Field: "criteria.duration", Message: "所要時間は必須です"}
	}
	return nil
}
