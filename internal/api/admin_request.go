// File: internal/api/admin_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=120" example:"leia@rebels.org"`
	Password string `json:"password" validate:"required,max=72" example:"Secret123!"`
	IsActive bool   `json:"is_active" example:"true"`
}

// swagger:model api.CreatePlanetRequest
type CreatePlanetRequest struct {
	Name       string  `json:"name" validate:"required,max=255" example:"Dagobah"`
	Climate    *string `json:"climate" validate:"omitempty,max=255" example:"murky"`
	Terrain    *string `json:"terrain" validate:"omitempty,max=255" example:"swamp, jungles"`
	Population *string `json:"population" validate:"omitempty,max=255" example:"unknown"`
}

// swagger:model api.CreatePersonRequest
type CreatePersonRequest struct {
	Name      string  `json:"name" validate:"required,max=255" example:"Yoda"`
	BirthYear *string `json:"birth_year" validate:"omitempty,max=255" example:"896BBY"`
	Gender    *string `json:"gender" validate:"omitempty,max=255" example:"male"`
}

// ModelField 描述一個欄位供管理介面使用
// swagger:model api.ModelField
type ModelField struct {
	Name     string `json:"name" example:"email"`
	Type     string `json:"type" example:"string"`
	Required bool   `json:"required" example:"true"`
	Unique   bool   `json:"unique,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
}

// swagger:model api.ModelInfo
type ModelInfo struct {
	Name     string       `json:"name" example:"planet"`
	Table    string       `json:"table" example:"planets"`
	Endpoint string       `json:"endpoint,omitempty" example:"/admin/planets"`
	Fields   []ModelField `json:"fields"`
}

// swagger:model api.AdminIndexResponse
type AdminIndexResponse struct {
	Msg    string      `json:"msg" example:"Completed"`
	Models []ModelInfo `json:"models"`
}
