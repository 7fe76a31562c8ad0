package tariff

// Category is the room category a tariff prices.
type Category string

const (
	CategorySingle Category = "single"
	CategoryDouble Category = "double"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySingle, CategoryDouble:
		return true
	default:
		return false
	}
}

// AllowsExtraPerson reports whether the category admits an extra-person
// surcharge. Only double rooms do.
func (c Category) AllowsExtraPerson() bool {
	return c == CategoryDouble
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
