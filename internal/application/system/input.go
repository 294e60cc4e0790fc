package system

// Keys holds the state of every action key in one frame
type Keys struct {
	Left       bool
	Right      bool
	Down       bool
	Jump       bool
	DoubleJump bool
	Shoot      bool
}

// Input is the current key state plus the previous frame's,
// so actions fire on the press edge only
type Input struct {
	Now  Keys
	Prev Keys
}

// NewInput pairs this frame's keys with last frame's
func NewInput(now, prev Keys) Input {
	return Input{Now: now, Prev: prev}
}

// JumpPressed reports a jump press edge
func (in Input) JumpPressed() bool {
	return in.Now.Jump && !in.Prev.Jump
}

// DoubleJumpPressed reports a double-jump press edge
func (in Input) DoubleJumpPressed() bool {
	return in.Now.DoubleJump && !in.Prev.DoubleJump
}

// ShootPressed reports a shoot press edge
func (in Input) ShootPressed() bool {
	return in.Now.Shoot && !in.Prev.Shoot
}

// Direction returns -1, 0 or +1 from the horizontal keys
func (in Input) Direction() int {
	dir := 0
	if in.Now.Left {
		dir--
	}
	if in.Now.Right {
		dir++
	}
	return dir
}
