package domain

import (
	"errors"
	"testing"
)

func londonReading() WeatherReading {
	return WeatherReading{
		Place:       "London",
		Country:     "GB",
		Temperature: 15.2,
		FeelsLike:   14.8,
		Humidity:    72,
		Pressure:    1012,
		WindSpeed:   3.1,
		Condition:   "Clouds",
		Description: "overcast clouds",
		Icon:        "04d",
	}
}

func TestWeatherReading_Card(t *testing.T) {
	card := londonReading().Card()

	if card.Title != "London, GB" {
		t.Errorf("expected title %q, got %q", "London, GB", card.Title)
	}
	if card.Temperature != 15 {
		t.Errorf("expected temperature 15, got %d", card.Temperature)
	}
	if card.FeelsLike != "Feels like 15°C" {
		t.Errorf("unexpected feels like %q", card.FeelsLike)
	}
	if card.Humidity != "72%" {
		t.Errorf("unexpected humidity %q", card.Humidity)
	}
	if card.Pressure != "1012 hPa" {
		t.Errorf("unexpected pressure %q", card.Pressure)
	}
	if card.WindSpeed != "3.1 m/s" {
		t.Errorf("unexpected wind speed %q", card.WindSpeed)
	}
	if card.IconURL != "https://openweathermap.org/img/wn/04d@2x.png" {
		t.Errorf("unexpected icon url %q", card.IconURL)
	}
}

func TestWeatherReading_DisplayTemperatureNegativeHalf(t *testing.T) {
	r := WeatherReading{Temperature: -2.5}
	if got := r.DisplayTemperature(); got != -2 {
		t.Errorf("DisplayTemperature() = %d, want -2", got)
	}
}

func TestWeatherReading_IconURLEmpty(t *testing.T) {
	if got := (WeatherReading{}).IconURL(); got != "" {
		t.Errorf("expected empty icon url, got %q", got)
	}
}

func TestAsLookupError(t *testing.T) {
	if AsLookupError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	cause := errors.New("connection refused")
	le := AsLookupError(cause)
	if le.Kind != KindNetworkFailure {
		t.Errorf("expected network failure, got %s", le.Kind)
	}
	if !errors.Is(le, cause) {
		t.Error("expected cause to be wrapped")
	}

	upstream := NewLookupError(KindUpstreamError, "city not found", nil)
	if got := AsLookupError(upstream); got != upstream {
		t.Error("expected LookupError to be returned unchanged")
	}
	if !IsKind(upstream, KindUpstreamError) {
		t.Error("expected IsKind to match upstream error")
	}
}

func TestSearchState_CloneIsDeep(t *testing.T) {
	r := londonReading()
	s := SearchState{Phase: PhaseSuccess, Result: &r}

	c := s.Clone()
	c.Result.Place = "Paris"

	if s.Result.Place != "London" {
		t.Errorf("clone shares result with original")
	}
}

func TestNewWidgetView(t *testing.T) {
	tests := []struct {
		name        string
		state       SearchState
		wantWelcome bool
		wantCard    bool
	}{
		{"idle shows welcome", SearchState{Phase: PhaseIdle}, true, false},
		{"loading hides welcome", SearchState{Phase: PhaseLoading}, false, false},
		{"failed hides welcome", SearchState{Phase: PhaseFailed, Error: NewLookupError(KindInvalidInput, MsgEmptyQuery, nil)}, false, false},
		{"success has card", SearchState{Phase: PhaseSuccess, Result: func() *WeatherReading { r := londonReading(); return &r }()}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewWidgetView(tt.state, true)
			if v.ShowWelcome != tt.wantWelcome {
				t.Errorf("ShowWelcome = %v, want %v", v.ShowWelcome, tt.wantWelcome)
			}
			if (v.Card != nil) != tt.wantCard {
				t.Errorf("card present = %v, want %v", v.Card != nil, tt.wantCard)
			}
			if !v.DarkMode {
				t.Error("expected dark mode to be carried through")
			}
		})
	}
}
