package helper

import (
	"WhatToDo-App/internal/domain/model"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// SearchArea は座標で指定された出発地点と検索半径から求めた範囲
type SearchArea struct {
	Center       orb.Point
	RadiusMeters float64
	Bound        orb.Bound
}

// ParseCoordinates は "lat,lng" 形式の文字列を orb.Point に変換する
// 地名など座標以外の入力の場合は ok が false
func ParseCoordinates(location string) (orb.Point, bool) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return orb.Point{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, false
	}

	// orb.Point は [lng, lat]
	return orb.Point{lng, lat}, true
}

// BuildSearchArea は座標指定の出発地点から検索範囲を作成する
func BuildSearchArea(criteria model.Criteria, unit model.UnitSystem) (*SearchArea, bool) {
	center, ok := ParseCoordinates(criteria.Location)
	if !ok || criteria.Distance <= 0 {
		return nil, false
	}

	radius := float64(criteria.Distance) * unit.MetersPerUnit()
	return &SearchArea{
		Center:       center,
		RadiusMeters: radius,
		Bound:        geo.NewBoundAroundPoint(center, radius),
	}, true
}

// Describe はプロンプトに埋め込む検索範囲の説明文を返す
func (a *SearchArea) Describe() string {
	return fmt.Sprintf("latitude %.4f to %.4f, longitude %.4f to %.4f",
		a.Bound.Min.Lat(), a.Bound.Max.Lat(), a.Bound.Min.Lon(), a.Bound.Max.Lon())
}

