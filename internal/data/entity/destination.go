package entity

type Destination struct {
	Base
	Name               string  `db:"name"`
	Location           string  `db:"location"`
	Description        string  `db:"description"`
	Image              *string `db:"image"`
	Highlights         string  `db:"highlights"`
	BestTime           string  `db:"best_time"`
	WeatherInformation *string `db:"weather_information"`
	LocalCulture       *string `db:"local_culture"`
	WildlifeInformation *string `db:"wildlife_information"`
}
