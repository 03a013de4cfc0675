package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

const (
	NameMaxLength = 100
	IconMaxLength = 50
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")

// Product is a catalog template staff pick item names from.
// Items keep a copy of the name, so deleting a product never touches orders.
type Product struct {
	id       kernel.UUID
	name     string
	category Category
	icon     string
	guard    guard.ConstructorGuard
}

func NewProduct(id kernel.UUID, name string, category Category, icon string) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setIcon(icon),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Category() Category {
	return p.category
}

func (p *Product) Icon() string {
	return p.icon
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("name", n, 1, NameMaxLength,
			fmt.Errorf("name is longer than %d characters", NameMaxLength))
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if _, err := ParseCategory(string(category)); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setIcon(icon string) error {
	if n := utf8.RuneCountInString(icon); n > IconMaxLength {
		return errs.NewValueIsOutOfRangeError("icon", n, 0, IconMaxLength)
	}
	p.icon = icon
	return nil
}
