package domain

// Read-only reference data. Wards sit inside LGAs inside states;
// senatorial districts sit inside states independently of LGAs.

type State struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SenatorialDistrict struct {
	ID      uint   `json:"id"`
	StateID uint   `json:"state_id"`
	Name    string `json:"name"`
}

type LGA struct {
	ID      uint   `json:"id"`
	StateID uint   `json:"state_id"`
	Name    string `json:"name"`
}

type Ward struct {
	ID    uint   `json:"id"`
	LGAID uint   `json:"lga_id"`
	Name  string `json:"name"`
}

type Party struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Acronym  string `json:"acronym"`
	IsActive bool   `json:"is_active"`
}
