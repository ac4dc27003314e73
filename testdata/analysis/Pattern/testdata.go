//go:build genrep

package testdata

import "github.com/sublee/genrep"

type Header struct {
	Kind int
}

type Packet struct {
	Header // want `unsupported pattern: embedded field Packet.Header is not representable`
	Body   []byte
}

var PacketRep = genrep.Record[Packet]()

type Expr interface{ isExpr() }

type Lit struct{ N int }

type Neg struct{ Inner Expr }

func (Lit) isExpr() {}

func (Neg) isExpr() {}

var ExprRep = genrep.Union[Expr]() // want `unsupported pattern: recursive derivation of Expr cannot fold to a finite representation`
