package handler

import (
	"WhatToDo-App/internal/application"
	"WhatToDo-App/internal/domain/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanHandler は保存済みプランAPIのハンドラー
type PlanHandler struct {
	planStore application.PlanStore
}

// NewPlanHandler は新しいPlanHandlerインスタンスを作成
func NewPlanHandler(planStore application.PlanStore) *PlanHandler {
	return &PlanHandler{
		planStore: planStore,
	}
}

// plansResponse は保存済みプラン一覧のレスポンス
type plansResponse struct {
	Plans []model.SavedPlan `json:"plans"`
}

// GetPlans GET /plans - 保存済みプラン一覧（新しい順）
func (h *PlanHandler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, plansResponse{Plans: h.planStore.List(c.Request.Context())})
}

// GetPlan GET /plans/:id - プランの詳細
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, ok := h.planStore.Get(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "プランが見つかりません",
		})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PostPlan POST /plans - 現在の検索条件と結果をプランとして保存
func (h *PlanHandler) PostPlan(c *gin.Context) {
	var payload model.NewPlanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	name := payload.TrimmedName()
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "name", Message: "プラン名を入力してください"}).Error(),
		})
		return
	}
	payload.Name = name

	plans := h.planStore.Add(c.Request.Context(), payload)
	c.JSON(http.StatusCreated, plansResponse{Plans: plans})
}

// DeletePlan DELETE /plans/:id - プランを削除（存在しないIDでもエラーにしない）
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	plans := h.planStore.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, plansResponse{Plans: plans})
}
