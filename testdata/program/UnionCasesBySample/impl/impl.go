package impl

type Circle struct {
	R float64
}

type Square struct {
	S float64
}

func (Circle) Kind() string { return "circle" }

func (Square) Kind() string { return "square" }
