package department

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubDepartment is stored inline on its department. Employees is a
// back-reference list kept in step by the employee service.
type SubDepartment struct {
	Name      string      `json:"name"`
	Employees []uuid.UUID `json:"employees"`
}

type Department struct {
	ID             uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	Name           string                              `gorm:"type:varchar(150);not null;uniqueIndex:uq_department_name"`
	Description    string                              `gorm:"type:text"`
	SubDepartments datatypes.JSONType[[]SubDepartment] `gorm:"type:jsonb;not null"`
	ManagerID      *uuid.UUID                          `gorm:"type:uuid"`
	IsActive       bool                                `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) Subs() []SubDepartment {
	subs := d.SubDepartments.Data()
	if subs == nil {
		return []SubDepartment{}
	}
	return subs
}

func (d *Department) setSubs(subs []SubDepartment) {
	d.SubDepartments = datatypes.NewJSONType(subs)
}

func (d *Department) subIndex(name string) int {
	for i, s := range d.Subs() {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

func (d *Department) HasSub(name string) bool {
	return d.subIndex(name) >= 0
}

// AddSub appends an empty sub-department. It reports false when the name is taken.
func (d *Department) AddSub(name string) bool {
	if d.HasSub(name) {
		return false
	}
	d.setSubs(append(d.Subs(), SubDepartment{Name: name, Employees: []uuid.UUID{}}))
	return true
}

// RemoveSub drops an empty sub-department. ok is false when it does not
// exist; occupied is true when employees still reference it.
func (d *Department) RemoveSub(name string) (ok, occupied bool) {
	i := d.subIndex(name)
	if i < 0 {
		return false, false
	}
	subs := d.Subs()
	if len(subs[i].Employees) > 0 {
		return true, true
	}
	d.setSubs(slices.Delete(subs, i, i+1))
	return true, false
}

// AttachEmployee records employeeID under sub. Unknown sub names are ignored.
func (d *Department) AttachEmployee(sub string, employeeID uuid.UUID) {
	i := d.subIndex(sub)
	if i < 0 {
		return
	}
	subs := d.Subs()
	if !slices.Contains(subs[i].Employees, employeeID) {
		subs[i].Employees = append(subs[i].Employees, employeeID)
	}
	d.setSubs(subs)
}

// DetachEmployee removes employeeID from every sub-department.
func (d *Department) DetachEmployee(employeeID uuid.UUID) {
	subs := d.Subs()
	for i := range subs {
		subs[i].Employees = slices.DeleteFunc(subs[i].Employees, func(id uuid.UUID) bool {
			return id == employeeID
		})
	}
	d.setSubs(subs)
}
