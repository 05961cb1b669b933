package controller

import "fmt"

// Op names a controller operation.
type Op int

const (
	OpSetDim Op = iota
	OpSetWarm
	OpApplyProfile
	OpToggleBreak
	OpShutdown
)

// Command is the fixed-signature variant that UI and hotkey layers
// dispatch instead of calling handlers with ad hoc argument shapes.
// Fields beyond Op are read only by the operations that use them.
type Command struct {
	Op        Op
	Level     int    // OpSetDim, OpSetWarm
	Notify    bool   // OpSetDim, OpSetWarm
	ProfileID string // OpApplyProfile
	Enabled   bool   // OpToggleBreak
}

// Dispatch routes a command to the matching operation.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd.Op {
	case OpSetDim:
		return c.SetDim(cmd.Level, cmd.Notify)
	case OpSetWarm:
		return c.SetWarm(cmd.Level, cmd.Notify)
	case OpApplyProfile:
		return c.ApplyProfile(cmd.ProfileID)
	case OpToggleBreak:
		return c.ToggleBreak(cmd.Enabled)
	case OpShutdown:
		c.Shutdown()
		return nil
	default:
		return fmt.Errorf("unknown command op %d", cmd.Op)
	}
}
