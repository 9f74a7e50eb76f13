package model

// GroundingSource は引用元の URI とタイトル
type GroundingSource struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// GroundingChunk はモデルの応答に付与された出典情報（Web または Maps）
type GroundingChunk struct {
	Web  *GroundingSource `json:"web,omitempty"`
	Maps *GroundingSource `json:"maps,omitempty"`
}

// Source は設定されている出典を返す（Web を優先）
func (g GroundingChunk) Source() *GroundingSource {
	if g.Web != nil {
		return g.Web
	}
	return g.Maps
}
