// File: internal/api/planet_response.go
package api

import "starwars-api/internal/model"

// swagger:model api.PlanetResponse
type PlanetResponse struct {
	ID         int     `json:"id" example:"1"`
	Name       string  `json:"name" example:"Tatooine"`
	Climate    *string `json:"climate" example:"arid"`
	Terrain    *string `json:"terrain" example:"desert"`
	Population *string `json:"population" example:"200000"`
}

func NewPlanetResponse(p model.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Population: p.Population,
	}
}

// swagger:model api.PlanetsResponse
type PlanetsResponse struct {
	Msg     string           `json:"msg" example:"Completed"`
	Planets []PlanetResponse `json:"planets"`
}

func NewPlanetsResponse(planets []model.Planet) PlanetsResponse {
	list := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		list = append(list, NewPlanetResponse(p))
	}
	return PlanetsResponse{Msg: MsgCompleted, Planets: list}
}

// swagger:model api.PlanetDetailResponse
type PlanetDetailResponse struct {
	Msg    string         `json:"msg" example:"Completed"`
	Planet PlanetResponse `json:"planet"`
}
