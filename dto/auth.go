package dto

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=255"`
	// Sponsors self-select at registration; admin accounts are provisioned
	// directly in the database.
	Role string `json:"role" binding:"omitempty,oneof=participant sponsor"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileReq struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=255"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}
