package model

import "errors"

// CurationFailedMessage はアクティビティ検索失敗時にユーザーへ表示する固定メッセージ
const CurationFailedMessage = "Failed to curate activities. The model may have returned an invalid response. Please try adjusting your criteria."

// ErrCurationFailed は errors.Is で CurationError を判定するための番兵
var ErrCurationFailed = errors.New("failed to curate activities")

// CurationError は検索処理の失敗を1種類のエラーにまとめたもの
type CurationError struct {
	Cause error
}

func (e *CurationError) Error() string {
	return CurationFailedMessage
}

func (e *CurationError) Unwrap() error {
	return e.Cause
}

// Is は ErrCurationFailed との比較を可能にする
func (e *CurationError) Is(target error) bool {
	return target == ErrCurationFailed
}

// NewCurationError は原因エラーを CurationError で包む
func NewCurationError(cause error) error {
	return &CurationError{Cause: cause}
}

// SearchResult は1回の検索で得られたカテゴリ別結果と出典
type SearchResult struct {
	Activities      *CategorizedActivities `json:"activities"`
	GroundingChunks []GroundingChunk       `json:"groundingChunks"`
}

// SearchRequest はアクティビティ検索APIのリクエスト
type SearchRequest struct {
	Criteria   Criteria   `json:"criteria"`
	Unit       UnitSystem `json:"unit,omitempty"`       // 省略時は Location から推定
	Refinement string     `json:"refinement,omitempty"` // 追加の絞り込み指示
}

// SearchResponse はアクティビティ検索APIのレスポンス
type SearchResponse struct {
	Activities      *CategorizedActivities `json:"activities"`
	GroundingChunks []GroundingChunk       `json:"groundingChunks"`
	Unit            UnitSystem             `json:"unit"`
}
