package department

type CreateDepartmentRequest struct {
	Name           string   `json:"name" binding:"required,max=150"`
	Description    string   `json:"description"`
	SubDepartments []string `json:"subDepartments" binding:"omitempty,dive,required,max=100"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId" binding:"omitempty,uuid"`
	IsActive    *bool  `json:"isActive"`
}

type AddSubDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type SubDepartmentResponse struct {
	Name      string   `json:"name"`
	Employees []string `json:"employees"`
}

type DepartmentResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	SubDepartments []SubDepartmentResponse `json:"subDepartments"`
	ManagerID      string                  `json:"managerId,omitempty"`
	IsActive       bool                    `json:"isActive"`
}
