package handler

import (
	"WhatToDo-App/internal/application"
	"WhatToDo-App/internal/domain/model"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActivityHandler はお気に入りアクティビティAPIのハンドラー
type ActivityHandler struct {
	activityStore application.ActivityStore
}

// NewActivityHandler は新しいActivityHandlerインスタンスを作成
func NewActivityHandler(activityStore application.ActivityStore) *ActivityHandler {
	return &ActivityHandler{
		activityStore: activityStore,
	}
}

// savedActivitiesResponse は保存済みアクティビティ一覧のレスポンス
type savedActivitiesResponse struct {
	SavedActivities []model.Activity `json:"savedActivities"`
	Saved           *bool            `json:"saved,omitempty"`
}

// GetActivities GET /profile/activities - 保存済みアクティビティ一覧
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	activities := h.activityStore.List(c.Request.Context())
	c.JSON(http.StatusOK, savedActivitiesResponse{SavedActivities: activities})
}

// PostActivity POST /profile/activities - アクティビティを保存（同名は無視）
func (h *ActivityHandler) PostActivity(c *gin.Context) {
	activity, ok := bindActivity(c)
	if !ok {
		return
	}

	activities := h.activityStore.Add(c.Request.Context(), activity)
	c.JSON(http.StatusOK, savedActivitiesResponse{SavedActivities: activities})
}

// PostToggleActivity POST /profile/activities/toggle - 保存状態を切り替える
func (h *ActivityHandler) PostToggleActivity(c *gin.Context) {
	activity, ok := bindActivity(c)
	if !ok {
		return
	}

	activities, saved := h.activityStore.Toggle(c.Request.Context(), activity)
	c.JSON(http.StatusOK, savedActivitiesResponse{SavedActivities: activities, Saved: &saved})
}

// DeleteActivity DELETE /profile/activities/*name - アクティビティを削除
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "アクティビティ名が指定されていません",
		})
		return
	}

	activities := h.activityStore.Remove(c.Request.Context(), name)
	c.JSON(http.StatusOK, savedActivitiesResponse{SavedActivities: activities})
}

// bindActivity はリクエストボディをアクティビティとして読み込む
func bindActivity(c *gin.Context) (model.Activity, bool) {
	var activity model.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return activity, false
	}

	if strings.TrimSpace(activity.ActivityName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "activityName", Message: "アクティビティ名は必須です"}).Error(),
		})
		return activity, false
	}
	return activity, true
}
