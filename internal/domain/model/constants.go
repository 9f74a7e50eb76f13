package model

// 永続化ストアのキー
const (
	ProfileStorageKey = "localCuratorProfile"
	PlanStorageKey    = "whatToDoPlans"
)

// NoRefinementText は絞り込み指示がない場合にプロンプトへ埋め込む文言
const NoRefinementText = "No additional refinement."
