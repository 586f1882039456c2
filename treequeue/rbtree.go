package treequeue

type color bool

const (
	red   color = true
	black color = false
)

// node is a red-black tree node. The queue's shared sentinel stands in for
// every absent child and for the root's parent, so link fields are never nil.
type node[T any] struct {
	item   T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

func (q *Queue[T]) leftRotate(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != q.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == q.nilNode {
		q.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (q *Queue[T]) rightRotate(y *node[T]) {
	x := y.left
	y.left = x.right
	if x.right != q.nilNode {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == q.nilNode {
		q.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// insert places v as a red leaf and rebalances. Ties descend to the right so
// equal elements keep their insertion order relative to each other.
func (q *Queue[T]) insert(v T) *node[T] {
	n := &node[T]{
		item:   v,
		color:  red,
		left:   q.nilNode,
		right:  q.nilNode,
		parent: q.nilNode,
	}

	parent := q.nilNode
	cur := q.root
	goesLeft := false
	for cur != q.nilNode {
		parent = cur
		goesLeft = q.compare(v, cur.item) < 0
		if goesLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n.parent = parent
	switch {
	case parent == q.nilNode:
		q.root = n
	case goesLeft:
		parent.left = n
	default:
		parent.right = n
	}

	q.insertFixup(n)

	if q.size == 0 {
		q.min = n
		q.max = n
	} else {
		if q.compare(v, q.min.item) < 0 {
			q.min = n
		}
		if q.compare(v, q.max.item) >= 0 {
			q.max = n
		}
	}

	q.size++
	q.mods++
	return n
}

func (q *Queue[T]) insertFixup(x *node[T]) {
	for x.parent.color == red {
		if x.parent == x.parent.parent.left {
			y := x.parent.parent.right
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.right {
					x = x.parent
					q.leftRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				q.rightRotate(x.parent.parent)
			}
		} else {
			y := x.parent.parent.left
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.left {
					x = x.parent
					q.rightRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				q.leftRotate(x.parent.parent)
			}
		}
	}
	q.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (q *Queue[T]) transplant(u, v *node[T]) {
	if u.parent == q.nilNode {
		q.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteNode unlinks z and rebalances. Nodes move but never exchange items,
// so pointers held by the queue's iterators stay meaningful across a delete.
func (q *Queue[T]) deleteNode(z *node[T]) {
	if z == q.min {
		q.min = q.successor(z)
	}
	if z == q.max {
		q.max = q.predecessor(z)
	}

	y := z
	yColor := y.color
	var x *node[T]

	switch {
	case z.left == q.nilNode:
		x = z.right
		q.transplant(z, z.right)
	case z.right == q.nilNode:
		x = z.left
		q.transplant(z, z.left)
	default:
		y = q.minimum(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			q.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		q.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		q.deleteFixup(x)
	}

	q.size--
	q.mods++
	if q.size == 0 {
		q.min = q.nilNode
		q.max = q.nilNode
	}
}

func (q *Queue[T]) deleteFixup(x *node[T]) {
	for x != q.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				q.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					q.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				q.leftRotate(x.parent)
				x = q.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				q.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					q.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				q.rightRotate(x.parent)
				x = q.root
			}
		}
	}
	x.color = black
}

func (q *Queue[T]) minimum(x *node[T]) *node[T] {
	for x.left != q.nilNode {
		x = x.left
	}
	return x
}

func (q *Queue[T]) maximum(x *node[T]) *node[T] {
	for x.right != q.nilNode {
		x = x.right
	}
	return x
}

// successor returns the in-order successor of x, or the sentinel when x is
// the greatest node.
func (q *Queue[T]) successor(x *node[T]) *node[T] {
	if x.right != q.nilNode {
		return q.minimum(x.right)
	}
	y := x.parent
	for y != q.nilNode && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// predecessor returns the in-order predecessor of x, or the sentinel when x
// is the least node.
func (q *Queue[T]) predecessor(x *node[T]) *node[T] {
	if x.left != q.nilNode {
		return q.maximum(x.left)
	}
	y := x.parent
	for y != q.nilNode && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// lookup descends by the comparison function and returns a node whose item
// compares equal to v, or the sentinel if none exists.
func (q *Queue[T]) lookup(v T) *node[T] {
	x := q.root
	for x != q.nilNode {
		c := q.compare(v, x.item)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return q.nilNode
}
