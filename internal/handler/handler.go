// File: internal/handler/handler.go
package handler

import (
	"starwars-api/internal/store"
)

// store 函式以變數引用，測試時可覆寫
var (
	listUsers            = store.ListUsers
	listPlanets          = store.ListPlanets
	listPeople           = store.ListPeople
	getPlanetByID        = store.GetPlanetByID
	getPersonByID        = store.GetPersonByID
	listFavoritesByUser  = store.ListFavoritesByUser
	createFavorite       = store.CreateFavorite
	deleteFavoritePlanet = store.DeleteFavoritePlanet
	deleteFavoritePerson = store.DeleteFavoritePerson
)
