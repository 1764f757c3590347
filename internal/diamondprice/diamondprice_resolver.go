package diamondprice

import (
	"context"
	"errors"
	"strings"

	diamondpriceerrors "go-diamond-payroll/internal/diamondprice/errors"

	"gorm.io/gorm"
)

// Precedence selects which tiers a lookup walks.
type Precedence int

const (
	// PrecedenceCreate: department+sub-department, then department only, then default.
	PrecedenceCreate Precedence = iota
	// PrecedenceUpdate: department+sub-department, then default. Entry
	// updates have never consulted the department-only tier.
	PrecedenceUpdate
)

type Tier string

const (
	TierSubDepartment Tier = "sub_department"
	TierDepartment    Tier = "department"
	TierDefault       Tier = "default"
)

type Query struct {
	Category      string
	DepartmentID  string
	SubDepartment string
}

// Resolve returns the first active rule that matches q under mode.
// It fails with ErrPriceNotFound when no tier matches.
func Resolve(ctx context.Context, repo Repository, q Query, mode Precedence) (*DiamondPrice, Tier, error) {
	category := strings.TrimSpace(q.Category)

	if q.DepartmentID != "" && q.SubDepartment != "" {
		price, err := repo.FindScoped(ctx, category, q.DepartmentID, q.SubDepartment)
		if found, err := hit(err); err != nil {
			return nil, "", err
		} else if found {
			return price, TierSubDepartment, nil
		}
	}

	if mode == PrecedenceCreate && q.DepartmentID != "" {
		price, err := repo.FindDepartmentOnly(ctx, category, q.DepartmentID)
		if found, err := hit(err); err != nil {
			return nil, "", err
		} else if found {
			return price, TierDepartment, nil
		}
	}

	price, err := repo.FindDefault(ctx, category)
	if found, err := hit(err); err != nil {
		return nil, "", err
	} else if found {
		return price, TierDefault, nil
	}

	return nil, "", diamondpriceerrors.ErrPriceNotFound
}

func hit(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}
