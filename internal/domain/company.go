package domain

import "context"

// Company represents a local tech employer
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Industry      string   `json:"industry"`
	Size          string   `json:"size"`
	EmployeeCount int      `json:"employee_count"`
	Headquarters  string   `json:"headquarters,omitempty"`
	TechStack     []string `json:"tech_stack"`
	Description   string   `json:"description,omitempty"`
	Founded       int      `json:"founded,omitempty"`
	Website       string   `json:"website,omitempty"`
}

// CompanyRepository defines the interface for company storage
type CompanyRepository interface {
	Put(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
}
