package lra

import "fmt"

// VarID identifies a real-valued decision variable within one Builder.
type VarID int

// RelOp is the relational operator an Atom tests its expression against
// zero with.
type RelOp int

const (
	Eq RelOp = iota
	Leq
	Lt
	Geq
	Gt
)

func (op RelOp) negate() RelOp {
	switch op {
	case Eq:
		return Eq // disequality is not representable; a negated equality stays an equality
	case Leq:
		return Gt
	case Lt:
		return Geq
	case Geq:
		return Lt
	case Gt:
		return Leq
	default:
		return op
	}
}

func (op RelOp) String() string {
	switch op {
	case Eq:
		return "="
	case Leq:
		return "<="
	case Lt:
		return "<"
	case Geq:
		return ">="
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// LinearExpr is sum(coeff[v] * v) + Const.
type LinearExpr struct {
	Coeffs map[VarID]float64
	Const  float64
}

// NewExpr returns the zero expression.
func NewExpr() LinearExpr {
	return LinearExpr{Coeffs: map[VarID]float64{}}
}

// Var returns the expression "1*v".
func Var(v VarID) LinearExpr {
	return LinearExpr{Coeffs: map[VarID]float64{v: 1}}
}

// Const returns the constant expression c.
func Const(c float64) LinearExpr {
	return LinearExpr{Coeffs: map[VarID]float64{}, Const: c}
}

func (e LinearExpr) clone() LinearExpr {
	out := LinearExpr{Coeffs: make(map[VarID]float64, len(e.Coeffs)), Const: e.Const}
	for v, c := range e.Coeffs {
		out.Coeffs[v] = c
	}
	return out
}

// Add returns e + other.
func (e LinearExpr) Add(other LinearExpr) LinearExpr {
	out := e.clone()
	for v, c := range other.Coeffs {
		out.Coeffs[v] += c
	}
	out.Const += other.Const
	return out
}

// Sub returns e - other.
func (e LinearExpr) Sub(other LinearExpr) LinearExpr {
	out := e.clone()
	for v, c := range other.Coeffs {
		out.Coeffs[v] -= c
	}
	out.Const -= other.Const
	return out
}

// Scale returns e * k.
func (e LinearExpr) Scale(k float64) LinearExpr {
	out := e.clone()
	for v := range out.Coeffs {
		out.Coeffs[v] *= k
	}
	out.Const *= k
	return out
}

// Plus returns e + c.
func (e LinearExpr) Plus(c float64) LinearExpr {
	out := e.clone()
	out.Const += c
	return out
}

// Atom is a single linear (in)equality: Expr <op> 0.
type Atom struct {
	Expr LinearExpr
	Op   RelOp
}

// AtomLeq, AtomLt, AtomGeq, AtomGt, AtomEq build an Atom comparing left and
// right via the named relation: left <op> right.
func AtomLeq(left, right LinearExpr) Atom { return Atom{Expr: left.Sub(right), Op: Leq} }
func AtomLt(left, right LinearExpr) Atom  { return Atom{Expr: left.Sub(right), Op: Lt} }
func AtomGeq(left, right LinearExpr) Atom { return Atom{Expr: left.Sub(right), Op: Geq} }
func AtomGt(left, right LinearExpr) Atom  { return Atom{Expr: left.Sub(right), Op: Gt} }
func AtomEq(left, right LinearExpr) Atom  { return Atom{Expr: left.Sub(right), Op: Eq} }

// Literal is an Atom or its negation.
type Literal struct {
	Atom    Atom
	Negated bool
}

// Lit wraps an Atom as a positive literal.
func Lit(a Atom) Literal { return Literal{Atom: a} }

// Not returns the negation of l.
func Not(l Literal) Literal { return Literal{Atom: l.Atom, Negated: !l.Negated} }

func (l Literal) String() string {
	if l.Negated {
		return fmt.Sprintf("not(%v %s 0)", l.Atom.Expr, l.Atom.Op)
	}
	return fmt.Sprintf("%v %s 0", l.Atom.Expr, l.Atom.Op)
}

// Clause is a disjunction of literals: at least one must hold.
type Clause []Literal

// Model maps each variable to the value a successful Solve assigned it.
type Model map[VarID]float64
