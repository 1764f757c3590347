package diamondprice

import "github.com/shopspring/decimal"

type DiamondPriceRequest struct {
	Category      string          `json:"category" binding:"required,max=50"`
	Price         decimal.Decimal `json:"price"`
	DepartmentID  string          `json:"departmentId" binding:"omitempty,uuid"`
	SubDepartment string          `json:"subDepartment" binding:"omitempty,max=100"`
	IsDefault     bool            `json:"isDefault"`
	IsActive      *bool           `json:"isActive"`
	Description   string          `json:"description" binding:"omitempty,max=500"`
}

type ListDiamondPricesRequest struct {
	Category        string `form:"category" binding:"omitempty,max=50"`
	DepartmentID    string `form:"departmentId" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"includeInactive"`
}

type ResolvePriceRequest struct {
	Category      string `form:"category" binding:"required,max=50"`
	DepartmentID  string `form:"departmentId" binding:"omitempty,uuid"`
	SubDepartment string `form:"subDepartment" binding:"omitempty,max=100"`
	// Mode is "create" (default) or "update".
	Mode string `form:"mode" binding:"omitempty,oneof=create update"`
}

type DiamondPriceResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	DepartmentID  string          `json:"departmentId,omitempty"`
	SubDepartment string          `json:"subDepartment,omitempty"`
	IsDefault     bool            `json:"isDefault"`
	IsActive      bool            `json:"isActive"`
	Description   string          `json:"description,omitempty"`
}

type ResolvedPriceResponse struct {
	RuleID   string          `json:"ruleId"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Tier     Tier            `json:"tier"`
}
