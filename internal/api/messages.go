// File: internal/api/messages.go
package api

// 回應訊息，維持既有客戶端相容的字串
const (
	MsgCompleted = "Completed"
	MsgHello     = "Hello, this is your GET /user response "

	MsgFavoritePlanetAdded   = "Planeta favorito agregado"
	MsgFavoritePersonAdded   = "Personaje favorito agregado"
	MsgFavoritePlanetDeleted = "Planeta eliminado con exito"
	MsgFavoritePersonDeleted = "Personaje borrado con exito"

	ErrPlanetNotFound         = "Planeta no encontrado"
	ErrPersonNotFound         = "Persona no encontrada"
	ErrFavoritePersonNotFound = "Personaje no se encontro"
)

// swagger:model api.MsgResponse
type MsgResponse struct {
	Msg string `json:"msg" example:"Completed"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Planeta favorito agregado"`
}

// ErrorResponse 為查無資料時的回應
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Planeta no encontrado"`
}

// APIErrorResponse 為全域錯誤處理輸出的格式
// swagger:model api.APIErrorResponse
type APIErrorResponse struct {
	Message string `json:"message" example:"Internal Server Error"`
}
