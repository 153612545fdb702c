package response

import (
	"time"

	"pet-grooming/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	PetName   string          `json:"petName"`
	PetType   entity.PetType  `json:"petType"`
	PetBreed  *string         `json:"petBreed,omitempty"`
	Address   string          `json:"address"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		PetName:   u.PetName,
		PetType:   u.PetType,
		PetBreed:  u.PetBreed,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
