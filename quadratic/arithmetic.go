package quadratic

// Scale returns a new expression (r·a, r·b, r·c). q is not modified.
// Scale(0, q) is the zero polynomial for any finite q.
func Scale(r float64, q *Expression) *Expression {
	a, b, c := q.coeffs()

	return New(r*a, r*b, r*c)
}

// Add returns a new expression holding the coefficient-wise sum q1 + q2.
// Neither input is modified. See (*Expression).Add for the in-place form.
func Add(q1, q2 *Expression) *Expression {
	a1, b1, c1 := q1.coeffs()
	a2, b2, c2 := q2.coeffs()

	return New(a1+a2, b1+b2, c1+c2)
}

// Sub returns a new expression q1 − q2. Neither input is modified.
func Sub(q1, q2 *Expression) *Expression {
	return Add(q1, Neg(q2))
}

// Neg returns a new expression −q.
func Neg(q *Expression) *Expression {
	return Scale(-1, q)
}

// Add adds o into the receiver in place and returns the receiver.
// o is not modified; adding an expression to itself doubles it.
func (q *Expression) Add(o *Expression) *Expression {
	a, b, c := o.coeffs()
	q.a += a
	q.b += b
	q.c += c

	return q
}
