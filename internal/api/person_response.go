// File: internal/api/person_response.go
package api

import "starwars-api/internal/model"

// PersonResponse 的 birth_year 以 camelCase 輸出
// swagger:model api.PersonResponse
type PersonResponse struct {
	ID        int     `json:"id" example:"1"`
	Name      string  `json:"name" example:"Luke Skywalker"`
	BirthYear *string `json:"birthYear" example:"19BBY"`
	Gender    *string `json:"gender" example:"male"`
}

func NewPersonResponse(p model.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthYear: p.BirthYear,
		Gender:    p.Gender,
	}
}

// swagger:model api.PeopleResponse
type PeopleResponse struct {
	Msg    string           `json:"msg" example:"Completed"`
	People []PersonResponse `json:"people"`
}

func NewPeopleResponse(people []model.Person) PeopleResponse {
	list := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		list = append(list, NewPersonResponse(p))
	}
	return PeopleResponse{Msg: MsgCompleted, People: list}
}

// swagger:model api.PersonDetailResponse
type PersonDetailResponse struct {
	Msg    string         `json:"msg" example:"Completed"`
	Person PersonResponse `json:"person"`
}
