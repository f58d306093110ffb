package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/weathercard/backend/pkg/utils"
)

// IconBaseURL is where OpenWeatherMap serves condition icons
const IconBaseURL = "https://openweathermap.org/img/wn"

// WeatherReading represents current conditions for one looked-up place.
// Values are metric: °C, %, hPa and m/s.
type WeatherReading struct {
	Place       string    `json:"place"`
	Country     string    `json:"country"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// DisplayTemperature returns the temperature rounded for display
func (w WeatherReading) DisplayTemperature() int {
	return int(utils.RoundHalfUp(w.Temperature))
}

// DisplayFeelsLike returns the "feels like" temperature rounded for display
func (w WeatherReading) DisplayFeelsLike() int {
	return int(utils.RoundHalfUp(w.FeelsLike))
}

// IconURL returns the 2x icon image for the reading's condition
func (w WeatherReading) IconURL() string {
	if w.Icon == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s@2x.png", IconBaseURL, w.Icon)
}

// Card is the presentation view of a WeatherReading
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	IconURL     string `json:"icon_url"`
	Temperature int    `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	WindSpeed   string `json:"wind_speed"`
}

// Card builds the display card for the reading
func (w WeatherReading) Card() Card {
	return Card{
		Title:       fmt.Sprintf("%s, %s", w.Place, w.Country),
		Description: w.Description,
		Condition:   w.Condition,
		IconURL:     w.IconURL(),
		Temperature: w.DisplayTemperature(),
		FeelsLike:   fmt.Sprintf("Feels like %d°C", w.DisplayFeelsLike()),
		Humidity:    formatNumber(w.Humidity) + "%",
		Pressure:    formatNumber(w.Pressure) + " hPa",
		WindSpeed:   formatNumber(w.WindSpeed) + " m/s",
	}
}

// formatNumber prints the shortest representation that round-trips
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
