package nws

// Response shapes for the handful of api.weather.gov endpoints we call.
// Only the fields the weather tools read are declared.

// Points is the /points/{lat},{lon} resolution response.
type Points struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		GridID              string `json:"gridId"`
		GridX               int    `json:"gridX"`
		GridY               int    `json:"gridY"`
		ObservationStations string `json:"observationStations"`
	} `json:"properties"`
}

// ForecastPeriod is one entry of a gridpoint forecast.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

// Forecast is a gridpoint forecast response.
type Forecast struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// Station is one observation station feature.
type Station struct {
	ID         string `json:"id"`
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
}

// StationCollection is the observation-stations listing for a gridpoint.
type StationCollection struct {
	Features []Station `json:"features"`
}

// Measurement is a unit-tagged observation value. Value is a pointer
// because the NWS reports null for sensors with no reading.
type Measurement struct {
	Value *float64 `json:"value"`
}

// Observation is a station's latest observation.
type Observation struct {
	Properties struct {
		Timestamp        string      `json:"timestamp"`
		TextDescription  string      `json:"textDescription"`
		Temperature      Measurement `json:"temperature"`
		WindSpeed        Measurement `json:"windSpeed"`
		WindDirection    Measurement `json:"windDirection"`
		RelativeHumidity Measurement `json:"relativeHumidity"`
	} `json:"properties"`
}

// Alert is one active alert feature.
type Alert struct {
	Properties struct {
		Event       string `json:"event"`
		Severity    string `json:"severity"`
		Urgency     string `json:"urgency"`
		AreaDesc    string `json:"areaDesc"`
		Headline    string `json:"headline"`
		Description string `json:"description"`
	} `json:"properties"`
}

// AlertCollection is the active-alerts listing for a point.
type AlertCollection struct {
	Features []Alert `json:"features"`
}
