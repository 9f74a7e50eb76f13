package handler

import (
	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/usecase"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler はアクティビティ検索APIのハンドラー
type RecommendationHandler struct {
	recommendationUseCase usecase.RecommendationUseCase
}

// NewRecommendationHandler は新しいRecommendationHandlerインスタンスを作成
func NewRecommendationHandler(recommendationUseCase usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

// PostSearch は条件に合うアクティビティを検索するエンドポイント
// POST /activities/search
func (h *RecommendationHandler) PostSearch(c *gin.Context) {
	req := model.SearchRequest{Criteria: model.DefaultCriteria()}

	// リクエストボディのバインド（省略されたフィールドは初期値のまま）
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := validateCriteria(&req.Criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}
	if req.Unit != "" && !req.Unit.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "unit", Message: "unitは'metric'または'imperial'を指定してください"}).Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.recommendationUseCase.SearchActivities(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrCurationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   model.CurationFailedMessage,
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}
