package match

import (
	"context"
	"sync"
)

// moveCell holds the latest column an agent submitted during its turn.
// Writes after the turn context is done, or after the runner sealed the
// cell, are dropped.
type moveCell struct {
	ctx context.Context

	mu     sync.Mutex
	column int
	set    bool
	sealed bool
}

func newMoveCell(ctx context.Context) *moveCell {
	return &moveCell{ctx: ctx}
}

func (c *moveCell) submit(column int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed || c.ctx.Err() != nil {
		return
	}
	c.column = column
	c.set = true
}

// seal closes the cell and returns its final content.
func (c *moveCell) seal() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sealed = true
	return c.column, c.set
}
