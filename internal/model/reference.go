package model

type Country struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// City keeps coordinates exactly as submitted; input files may carry numbers
// or free text.
type City struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	CountryID ID     `json:"countryId"`
	Latitude  any    `json:"latitude"`
	Longitude any    `json:"longitude"`
}

type University struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	CountryID ID     `json:"countryId"`
	CityID    ID     `json:"cityId"`
	IsPublic  bool   `json:"isPublic"`
}
