package lang

// OpType identifies the syntactic role of a tree node's operation.
type OpType int

const (
	// OpVariable is a variable reference resolved at evaluation time.
	OpVariable OpType = iota

	// OpIfBlock is the root of a conditional construct.
	OpIfBlock

	// OpIfCondition names the condition variable of an if-block.
	OpIfCondition

	// OpIfBody groups the true-branch and optional false-branch of an
	// if-block.
	OpIfBody
)

// String returns a string representation of the operation type.
func (t OpType) String() string {
	switch t {
	case OpVariable:
		return "var"
	case OpIfBlock:
		return "if_block"
	case OpIfCondition:
		return "if_condition"
	case OpIfBody:
		return "if_body"
	default:
		return "unknown"
	}
}

// Op is the operation owned by a tree node. Value holds the identifier
// for OpVariable and OpIfCondition and is empty otherwise.
type Op struct {
	Value string
	Type  OpType
}

// Node is a binary parse-tree node. The synthetic root produced by
// [Parse] has a nil Op; its Left child encodes a bare-variable
// statement and its Right child an if-block. Children are exclusively
// owned by their parent.
type Node struct {
	Op    *Op
	Left  *Node
	Right *Node
}

// InsertLeft appends child to the left spine: when the left slot is
// occupied, insertion recurses into the occupant. Repeated insertions
// therefore chain in source order instead of overwriting.
func (n *Node) InsertLeft(child *Node) {
	if n.Left != nil {
		n.Left.InsertLeft(child)

		return
	}

	n.Left = child
}

// InsertRight appends child to the right spine, chaining like
// [Node.InsertLeft].
func (n *Node) InsertRight(child *Node) {
	if n.Right != nil {
		n.Right.InsertRight(child)

		return
	}

	n.Right = child
}
