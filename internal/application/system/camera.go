package system

// CameraOffset returns the horizontal scroll for a player at playerX:
// half a viewport behind the player, never past either end of the map.
// A map narrower than the viewport never scrolls.
func CameraOffset(playerX, viewportW, mapW float64) float64 {
	maxX := mapW - viewportW
	if maxX <= 0 {
		return 0
	}
	x := playerX - viewportW/2
	if x < 0 {
		return 0
	}
	if x > maxX {
		return maxX
	}
	return x
}

func (s *Simulation) updateCamera() {
	s.cameraX = CameraOffset(s.player.X, s.viewportW, s.stage.PixelWidth())
}
