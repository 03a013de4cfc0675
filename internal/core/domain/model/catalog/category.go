package catalog

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Category groups catalog products. It round-trips through its string form.
type Category string

const (
	Polygraphy  Category = "polygraphy"
	Packaging   Category = "packaging"
	Souvenirs   Category = "souvenirs"
	LargeFormat Category = "large-format"
)

func Categories() []Category {
	return []Category{Polygraphy, Packaging, Souvenirs, LargeFormat}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) String() string {
	return string(c)
}
