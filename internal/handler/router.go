package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter は全エンドポイントを登録したginエンジンを作成
func NewRouter(recommendation *RecommendationHandler, activities *ActivityHandler, plans *PlanHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "WhatToDo-App"})
	})

	router.POST("/activities/search", recommendation.PostSearch)

	profile := router.Group("/profile")
	{
		profile.GET("/activities", activities.GetActivities)
		profile.POST("/activities", activities.PostActivity)
		profile.POST("/activities/toggle", activities.PostToggleActivity)
		// 名前に "/" を含むアクティビティも削除できるよう catch-all で受ける
		profile.DELETE("/activities/*name", activities.DeleteActivity)
	}

	planRoutes := router.Group("/plans")
	{
		planRoutes.GET("", plans.GetPlans)
		planRoutes.GET("/:id", plans.GetPlan)
		planRoutes.POST("", plans.PostPlan)
		planRoutes.DELETE("/:id", plans.DeletePlan)
	}

	return router
}
