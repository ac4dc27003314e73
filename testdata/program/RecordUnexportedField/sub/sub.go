package sub

type Secret struct {
	Public string
	hidden int
}

func New(p string, h int) Secret { return Secret{Public: p, hidden: h} }
