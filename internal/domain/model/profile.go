package model

// UserProfile はお気に入りアクティビティを保持するプロフィール（永続化時のエンベロープ）
type UserProfile struct {
	SavedActivities []Activity `json:"savedActivities"`
}
