package crunch

// tiers lists the operator precedence classes, most binding first. Pass
// order is the only encoding of precedence; the leftmost-first scan in
// resolve is the only encoding of associativity.
var tiers = [...][]opKind{
	{opPow, opRoot},
	{opMul, opDiv, opMod},
	{opAdd, opSub},
}

// resolve collapses g.body to a single term. For each tier, the leftmost
// remaining placeholder of that tier binds its neighbors: the following
// element becomes its right operand and the preceding element its left,
// both spliced out of the sequence. A leading + or - with no left neighbor
// binds an implicit zero instead; every other operator requires one.
func (g *group) resolve() error {
	for _, tier := range tiers {
		for {
			idx := placeholderIndex(g.body, tier)
			if idx < 0 {
				break
			}
			op := g.body[idx].(*operator)
			if idx+1 == len(g.body) {
				return &OperandError{Col: op.col, Op: op.kind.String()}
			}
			rhs := g.body[idx+1]
			if idx == 0 {
				if op.kind != opAdd && op.kind != opSub {
					return &OperandError{Col: op.col, Op: op.kind.String(), Left: true}
				}
				// Leading + and - act as signs on an implicit zero.
				g.body[0] = &binary{kind: op.kind, left: &literal{text: "0", col: op.col}, right: rhs, col: op.col}
				g.body = append(g.body[:1], g.body[2:]...)
				continue
			}
			g.body[idx-1] = &binary{kind: op.kind, left: g.body[idx-1], right: rhs, col: op.col}
			g.body = append(g.body[:idx], g.body[idx+2:]...)
		}
	}
	switch len(g.body) {
	case 0:
		return &EmptyExpressionError{Col: g.col}
	case 1:
		return nil
	default:
		return &ResolveError{Col: g.body[1].pos(), N: len(g.body)}
	}
}

// placeholderIndex returns the index of the leftmost unresolved operator
// belonging to the given tier, or -1 if none remains.
func placeholderIndex(body []term, tier []opKind) int {
	for i, t := range body {
		op, ok := t.(*operator)
		if !ok {
			continue
		}
		for _, k := range tier {
			if op.kind == k {
				return i
			}
		}
	}
	return -1
}
