package customer

type CreateCustomerRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	NationalID  string `json:"cccd" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

type UpdateCustomerRequest struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}
