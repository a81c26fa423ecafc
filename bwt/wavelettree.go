package bwt

// waveletTree is the fixed five-internal-node tree over the DNA alphabet:
//
//	node 0 ── 0 → node 1 ── 0 → 'N'
//	       └─ 1 → node 2     └─ 1 → 'A'
//	              ├─ 0 → node 3 ── 0 → 'C'
//	              │             └─ 1 → 'G'
//	              └─ 1 → node 4 ── 0 → 'T'
//	                            └─ 1 → '$'
//
// Because the topology and alphabet are fixed at compile time, nodes are a
// small array of records rather than heap-allocated tree nodes: no
// dynamic dispatch, no back-pointers, no cyclic structure.
type waveletTree struct {
	bits [5]*rankDict
}

type wtChildKind int

const (
	wtChildNode wtChildKind = iota
	wtChildLeaf
)

type wtChild struct {
	kind   wtChildKind
	node   int
	symbol byte
}

func childNode(n int) wtChild        { return wtChild{kind: wtChildNode, node: n} }
func childLeaf(symbol byte) wtChild  { return wtChild{kind: wtChildLeaf, symbol: symbol} }

type wtMeta struct {
	left, right wtChild
}

var waveletTopology = [5]wtMeta{
	0: {left: childNode(1), right: childNode(2)},
	1: {left: childLeaf('N'), right: childLeaf('A')},
	2: {left: childNode(3), right: childNode(4)},
	3: {left: childLeaf('C'), right: childLeaf('G')},
	4: {left: childLeaf('T'), right: childLeaf('$')},
}

// symbolPaths are the prefix codes assigned to each symbol: the sequence
// of left(false)/right(true) choices from the root down to each symbol's
// leaf. N=00, A=01, C=100, G=101, T=110, $=111.
var symbolPaths = map[byte][]bool{
	'N': {false, false},
	'A': {false, true},
	'C': {true, false, false},
	'G': {true, false, true},
	'T': {true, true, false},
	'$': {true, true, true},
}

// routeRight reports whether symbol b descends right at the given
// internal node, per the topology above.
func routeRight(node int, b byte) bool {
	switch node {
	case 0:
		return b == 'C' || b == 'G' || b == 'T' || b == '$'
	case 1:
		return b == 'A'
	case 2:
		return b == 'T' || b == '$'
	case 3:
		return b == 'G'
	case 4:
		return b == '$'
	default:
		panic("bwt: invalid wavelet tree node")
	}
}

// buildWaveletTree partitions seq (the BWT string) through the fixed
// topology, order-preserving at each split, and builds a rank dictionary
// over each internal node's bit vector.
func buildWaveletTree(seq []byte) *waveletTree {
	var wt waveletTree
	seqs := map[int][]byte{0: seq}
	for node := 0; node < 5; node++ {
		s := seqs[node]
		bitsIn := make([]bool, len(s))
		var left, right []byte
		for i, b := range s {
			if routeRight(node, b) {
				bitsIn[i] = true
				right = append(right, b)
			} else {
				left = append(left, b)
			}
		}
		wt.bits[node] = newRankDict(newBitVector(bitsIn))

		meta := waveletTopology[node]
		if meta.left.kind == wtChildNode {
			seqs[meta.left.node] = left
		}
		if meta.right.kind == wtChildNode {
			seqs[meta.right.node] = right
		}
	}
	return &wt
}

// access returns the i-th symbol of the string the tree was built from.
func (wt *waveletTree) access(i int) byte {
	node := 0
	idx := i
	for {
		bit := wt.bits[node].bv.get(idx)
		rank := wt.bits[node].RankBit(bit, idx)
		meta := waveletTopology[node]
		var child wtChild
		if bit {
			child = meta.right
		} else {
			child = meta.left
		}
		if child.kind == wtChildLeaf {
			return child.symbol
		}
		idx = rank - 1
		node = child.node
	}
}

// rank returns the number of occurrences of c in seq[0..i], inclusive.
func (wt *waveletTree) rank(c byte, i int) int {
	path := symbolPaths[c]
	node := 0
	cur := i
	r := 0
	for _, bit := range path {
		rd := wt.bits[node]
		r = rd.RankBit(bit, cur)
		if r == 0 {
			return 0
		}
		cur = r - 1

		meta := waveletTopology[node]
		var child wtChild
		if bit {
			child = meta.right
		} else {
			child = meta.left
		}
		if child.kind == wtChildLeaf {
			break
		}
		node = child.node
	}
	return r
}
