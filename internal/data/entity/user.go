package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type PetType string

const (
	PetTypeDog    PetType = "Dog"
	PetTypeCat    PetType = "Cat"
	PetTypeBird   PetType = "Bird"
	PetTypeRabbit PetType = "Rabbit"
	PetTypeOther  PetType = "Other"
)

func IsValidPetType(t PetType) bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeBird, PetTypeRabbit, PetTypeOther:
		return true
	}
	return false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        string   `db:"phone"`
	PetName      string   `db:"pet_name"`
	PetType      PetType  `db:"pet_type"`
	PetBreed     *string  `db:"pet_breed"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
