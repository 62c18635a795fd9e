package request

type CreateDestinationRequest struct {
	Name                string  `json:"name" validate:"required,max=200"`
	Location            string  `json:"location" validate:"required,max=200"`
	Description         string  `json:"description" validate:"required"`
	Image               *string `json:"image,omitempty"`
	Highlights          string  `json:"highlights" validate:"required"`
	BestTime            string  `json:"best_time" validate:"required,max=100"`
	WeatherInformation  *string `json:"weather_information,omitempty"`
	LocalCulture        *string `json:"local_culture,omitempty"`
	WildlifeInformation *string `json:"wildlife_information,omitempty"`
}

type UpdateDestinationRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Location            *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Description         *string `json:"description,omitempty"`
	Image               *string `json:"image,omitempty"`
	Highlights          *string `json:"highlights,omitempty"`
	BestTime            *string `json:"best_time,omitempty" validate:"omitempty,max=100"`
	WeatherInformation  *string `json:"weather_information,omitempty"`
	LocalCulture        *string `json:"local_culture,omitempty"`
	WildlifeInformation *string `json:"wildlife_information,omitempty"`
}
