package assessment

// Navigator 현재 표시 중인 문항 그룹 단계를 [1, groupCount] 범위로 제한한다.
type Navigator struct {
	current int
	max     int
}

// NewNavigator starts at step 1.
func NewNavigator(groupCount int) *Navigator {
	if groupCount < 1 {
		groupCount = 1
	}
	return &Navigator{current: 1, max: groupCount}
}

// Current returns the visible group index.
func (n *Navigator) Current() int { return n.current }

// Next advances one step. At the last group it is a no-op.
func (n *Navigator) Next() {
	if n.current < n.max {
		n.current++
	}
}

// Prev steps back. At the first group it is a no-op.
func (n *Navigator) Prev() {
	if n.current > 1 {
		n.current--
	}
}

// JumpTo moves directly to step i, clamped into range. The original UI set the
// value unconditionally; clamping closes the out-of-range jump noted there.
func (n *Navigator) JumpTo(i int) {
	if i < 1 {
		i = 1
	}
	if i > n.max {
		i = n.max
	}
	n.current = i
}
