package testutil

import (
	"time"

	"github.com/vk/hclview/internal/schema"
)

// Address is a bindable fixture used as a nested-view model.
type Address struct {
	Street string
	City   string
}

// Properties implements schema.Bindable.
func (a *Address) Properties() []schema.Property {
	return []schema.Property{
		schema.StringVar("street", &a.Street),
		schema.StringVar("city", &a.City),
	}
}

// Person is a bindable fixture with a property of every primitive kind plus
// a nested address object.
type Person struct {
	Name    string
	Age     int
	Clicks  int64
	Rating  float64
	Active  bool
	Joined  time.Time
	Address *Address
}

// Properties implements schema.Bindable.
func (p *Person) Properties() []schema.Property {
	return []schema.Property{
		schema.StringVar("name", &p.Name),
		schema.IntVar("age", &p.Age),
		schema.Int64Var("clicks", &p.Clicks),
		schema.FloatVar("rating", &p.Rating),
		schema.BoolVar("active", &p.Active),
		schema.ObjectVar("joined", &p.Joined),
		schema.ObjectVar("address", &p.Address),
	}
}
