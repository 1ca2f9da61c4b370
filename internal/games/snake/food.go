package snake

// spawnFood picks a cell uniformly from the whole grid. Cells covered by the
// snake are not excluded, so food can appear under the body.
func (g *GameState) spawnFood() Point {
	return Point{
		X: g.rng.Intn(g.grid.Width),
		Y: g.rng.Intn(g.grid.Height),
	}
}
