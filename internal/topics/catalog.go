package topics

import "github.com/ananya-v/explorables/internal/lesson"

// NewCatalog returns the registry with every built-in lesson.
func NewCatalog() *lesson.Registry {
	r := lesson.NewRegistry()
	r.Register("riemann", func() lesson.Lesson { return NewRiemann() })
	r.Register("tangent", func() lesson.Lesson { return NewTangent() })
	r.Register("taylor", func() lesson.Lesson { return NewTaylor() })
	r.Register("fourier", func() lesson.Lesson { return NewFourier() })
	r.Register("eigen", func() lesson.Lesson { return NewEigen() })
	r.Register("market", func() lesson.Lesson { return NewMarket() })
	r.Register("fieldline", func() lesson.Lesson { return NewFieldLine() })
	return r
}
