package response

import (
	"time"

	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserCountResponse struct {
	Count int64 `json:"count"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	resp := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromUserView(rm)
	}
	return resp
}
