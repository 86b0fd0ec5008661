// File: internal/api/user_response.go
package api

import "starwars-api/internal/model"

// UserResponse 不含密碼欄位，任何情況都不可加入
// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"luke@rebels.org"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

// swagger:model api.UsersResponse
type UsersResponse struct {
	Msg   string         `json:"msg" example:"Completed"`
	Users []UserResponse `json:"users"`
}

func NewUsersResponse(users []model.User) UsersResponse {
	list := make([]UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, NewUserResponse(u))
	}
	return UsersResponse{Msg: MsgCompleted, Users: list}
}
