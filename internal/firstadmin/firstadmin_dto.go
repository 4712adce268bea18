package firstadmin

type CreateFirstAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateFirstAdminResult struct {
	UserID  string
	Message string
}
