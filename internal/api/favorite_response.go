// File: internal/api/favorite_response.go
package api

import "starwars-api/internal/model"

// FavoriteResponse 只輸出收藏目標，不含 id 與 user_id
// swagger:model api.FavoriteResponse
type FavoriteResponse struct {
	PlanetID *int `json:"planet_id" example:"1"`
	PeopleID *int `json:"people_id"`
}

func NewFavoriteResponse(f model.Favorite) FavoriteResponse {
	return FavoriteResponse{PlanetID: f.PlanetID, PeopleID: f.PeopleID}
}

// swagger:model api.FavoritesResponse
type FavoritesResponse struct {
	Msg       string             `json:"msg" example:"Completed"`
	Favorites []FavoriteResponse `json:"favorites"`
}

func NewFavoritesResponse(favorites []model.Favorite) FavoritesResponse {
	list := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		list = append(list, NewFavoriteResponse(f))
	}
	return FavoritesResponse{Msg: MsgCompleted, Favorites: list}
}
