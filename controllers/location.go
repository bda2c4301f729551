package controllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

func queryFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter " + name})
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for " + name})
		return 0, false
	}
	return v, true
}

func roundKm(v float64) float64 {
	return math.Round(v*100) / 100
}

// Distance returns the great-circle distance in km between two points.
func Distance() gin.HandlerFunc {
	return func(c *gin.Context) {
		lat1, ok := queryFloat(c, "lat1")
		if !ok {
			return
		}
		lon1, ok := queryFloat(c, "lon1")
		if !ok {
			return
		}
		lat2, ok := queryFloat(c, "lat2")
		if !ok {
			return
		}
		lon2, ok := queryFloat(c, "lon2")
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"pointA":      gin.H{"lat": lat1, "lon": lon1},
			"pointB":      gin.H{"lat": lat2, "lon": lon2},
			"distance_km": roundKm(utils.HaversineKm(lat1, lon1, lat2, lon2)),
		})
	}
}

type nearbyPlace struct {
	Type       string   `json:"type"`
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	DistanceKm float64  `json:"distance_km"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// Nearby lists restaurants and hotels within radius_km of a point, sorted
// by distance.
func Nearby(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, ok := queryFloat(c, "latitude")
		if !ok {
			return
		}
		lon, ok := queryFloat(c, "longitude")
		if !ok {
			return
		}

		radius := 5.0
		if raw := c.Query("radius_km"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for radius_km"})
				return
			}
			radius = parsed
		}
		placeType := strings.ToLower(c.Query("type"))

		results := make([]nearbyPlace, 0)

		if placeType == "" || placeType == "restaurant" {
			var restaurants []models.Restaurant
			if err := db.Find(&restaurants).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
				return
			}
			for _, r := range restaurants {
				if r.Latitude == nil || r.Longitude == nil {
					continue
				}
				dist := utils.HaversineKm(lat, lon, *r.Latitude, *r.Longitude)
				if dist <= radius {
					results = append(results, nearbyPlace{
						Type: "restaurant", ID: r.ID, Name: r.Name, Address: r.Address,
						DistanceKm: roundKm(dist), Latitude: r.Latitude, Longitude: r.Longitude,
					})
				}
			}
		}

		if placeType == "" || placeType == "hotel" {
			var hotels []models.Hotel
			if err := db.Find(&hotels).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels"})
				return
			}
			for _, h := range hotels {
				if h.Latitude == nil || h.Longitude == nil {
					continue
				}
				dist := utils.HaversineKm(lat, lon, *h.Latitude, *h.Longitude)
				if dist <= radius {
					results = append(results, nearbyPlace{
						Type: "hotel", ID: h.ID, Name: h.Name, Address: h.Address,
						DistanceKm: roundKm(dist), Latitude: h.Latitude, Longitude: h.Longitude,
					})
				}
			}
		}

		sort.Slice(results, func(i, j int) bool { return results[i].DistanceKm < results[j].DistanceKm })
		c.JSON(http.StatusOK, gin.H{"nearby": results})
	}
}
