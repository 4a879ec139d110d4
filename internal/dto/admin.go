package dto

type CreateOwnerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type StatsResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalTrainers int64 `json:"totalTrainers"`
	AssignedUsers int64 `json:"assignedUsers"`
}
