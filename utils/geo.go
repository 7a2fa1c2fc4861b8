package utils

import (
	"math"

	"bandung-maps/model"
)

// EarthRadiusKm WGS84 参考椭球长半轴 (公里)
const EarthRadiusKm = 6378.137

// DegreesToRadians 角度转弧度
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// HaversineKm Haversine 公式, 返回两点间球面距离 (公里)
// 用于补全数据中未给出距离的边, 以及按坐标查找最近节点
func HaversineKm(p1, p2 model.Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lon1 := DegreesToRadians(p1.Lng)
	lat2 := DegreesToRadians(p2.Lat)
	lon2 := DegreesToRadians(p2.Lng)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// c = 2 * atan2(√a, √(1-a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Midpoint 两点连线的中点 (小范围内直接取经纬度平均值即可)
func Midpoint(p1, p2 model.Point) model.Point {
	return model.Point{
		Lat: (p1.Lat + p2.Lat) / 2,
		Lng: (p1.Lng + p2.Lng) / 2,
	}
}
