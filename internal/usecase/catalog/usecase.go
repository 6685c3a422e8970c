package catalog

import (
	"context"
	"errors"
	"strings"

	productDomain "loanmarket-backend/internal/domain/product"
	"loanmarket-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid product input")

type Usecase struct{ repo productDomain.Repository }

func NewUsecase(r productDomain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	Title        string
	Description  string
	Category     string
	InterestRate float64
	Documents    string
	Image        string
	Limit        float64
	EMI          string

	ManagerEmail string
	ManagerName  string
	ManagerImage string
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*productDomain.Product, error) {
	if strings.TrimSpace(in.Title) == "" || in.InterestRate < 0 || in.Limit <= 0 {
		return nil, ErrInvalidInput
	}
	p := &productDomain.Product{
		ProductID:    id.NewID32(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		InterestRate: in.InterestRate,
		Documents:    in.Documents,
		Image:        in.Image,
		Limit:        in.Limit,
		EMI:          in.EMI,
		Availability: productDomain.Available,
		ManagerEmail: strings.ToLower(strings.TrimSpace(in.ManagerEmail)),
		ManagerName:  in.ManagerName,
		ManagerImage: in.ManagerImage,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) ListAvailable(ctx context.Context, limit int) ([]productDomain.Product, error) {
	return u.repo.ListAvailable(ctx, limit)
}

func (u *Usecase) ListAll(ctx context.Context) ([]productDomain.Product, error) {
	return u.repo.ListAll(ctx)
}

func (u *Usecase) Get(ctx context.Context, productID string) (*productDomain.Product, error) {
	p, err := u.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productDomain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update applies only the supplied fields.
func (u *Usecase) Update(ctx context.Context, productID string, patch productDomain.Patch) (*productDomain.Product, error) {
	if patch.Empty() {
		return u.Get(ctx, productID)
	}
	rows, err := u.repo.UpdateFields(ctx, productID, patch)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, productDomain.ErrNotFound
	}
	return u.Get(ctx, productID)
}

// ToggleAvailability validates the target value strictly and is a no-op
// when the product is already in the requested state.
func (u *Usecase) ToggleAvailability(ctx context.Context, productID, value string) (*productDomain.Product, error) {
	target := productDomain.Availability(value)
	if !target.Valid() {
		return nil, productDomain.ErrBadAvailability
	}
	p, err := u.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.Availability == target {
		return p, nil
	}
	if err := u.repo.SetAvailability(ctx, productID, target); err != nil {
		return nil, err
	}
	p.Availability = target
	return p, nil
}

func (u *Usecase) Delete(ctx context.Context, productID string) error {
	rows, err := u.repo.Delete(ctx, productID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return productDomain.ErrNotFound
	}
	return nil
}
