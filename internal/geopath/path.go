// Package geopath синтезирует геотраектории в виде смещенного случайного
// блуждания. Траектории выглядят как устойчивый дрейф в одном направлении
// с локальным дрожанием, а не как чистый шум.
package geopath

import (
	"github.com/golang/geo/s2"

	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/random"
)

const earthRadiusMeters = 6371000.0

// Walk строит упорядоченную последовательность из segments+1 координат,
// начиная со start. Направленное смещение (biasLat, biasLng) разыгрывается
// один раз на вызов, каждая компонента равномерна в [-spread/2, +spread/2].
// Каждая следующая точка получает смещение плюс независимое возмущение,
// равномерное в [-spread/6, +spread/6] по обеим осям.
// Выход за границы реальной географии не проверяется: данные синтетические.
func Walk(src random.Source, start models.GeoCoordinate, segments int, spread float64) []models.GeoCoordinate {
	path := make([]models.GeoCoordinate, 0, segments+1)
	path = append(path, start)

	biasLat := random.Float(src, -spread/2, spread/2)
	biasLng := random.Float(src, -spread/2, spread/2)

	current := start
	for i := 0; i < segments; i++ {
		current.Lat += biasLat + random.Float(src, -spread/6, spread/6)
		current.Lng += biasLng + random.Float(src, -spread/6, spread/6)
		path = append(path, current)
	}
	return path
}

// DistanceMeters возвращает расстояние по дуге большого круга между двумя точками
func DistanceMeters(a, b models.GeoCoordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

// LengthMeters возвращает суммарную длину траектории в метрах
func LengthMeters(path []models.GeoCoordinate) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += DistanceMeters(path[i-1], path[i])
	}
	return total
}
