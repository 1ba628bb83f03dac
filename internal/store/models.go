package store

// Country is an ISO 3166-1 alpha-2 code with a display name.
type Country struct {
	Code string `json:"code" validate:"required,iso3166_1_alpha2"`
	Name string `json:"name" validate:"required"`
}

// City is a place the weather can be requested for.
// Country must reference a known Country code.
type City struct {
	Country  string `json:"country" validate:"required,iso3166_1_alpha2"`
	Location string `json:"location" validate:"required"`
	Name     string `json:"name" validate:"required"`
}
