package dto

type RegisterRequest struct {
	IDToken  string `json:"id_token"  validate:"required"`
	Username string `json:"username"  validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=100"`
	// Role defaults to staff when omitted or unrecognized.
	Role string `json:"role"`
}

type LoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UserResponse struct {
	ID          uint   `json:"user_id"`
	IdentityUID string `json:"identity_uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
