package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    string  `json:"phone" validate:"required,min=7,max=20"`
	PetName  string  `json:"petName" validate:"required,max=100"`
	PetType  string  `json:"petType" validate:"required,oneof=Dog Cat Bird Rabbit Other"`
	PetBreed *string `json:"petBreed,omitempty" validate:"omitempty,max=100"`
	Address  string  `json:"address" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
