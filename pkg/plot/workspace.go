package plot

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/gucio321/polarbez/pkg/polar"
)

//go:embed workspaces.json
var workspaces []byte

// DefaultWorkspace is the name of the workspace used when none is given.
const DefaultWorkspace = "ender3"

// Workspace represents the drawing area of a plotter.
type Workspace struct {
	// MinX and MinY represent the point counting from printers (0,0)
	MinX, MinY,
	// MaxX and MaxY represent the point counting from printers (0,0)
	MaxX, MaxY float64

	Name        string
	Description string
}

// Contains reports whether p (machine coordinates) is inside the workspace.
func (w Workspace) Contains(p polar.Vec2) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Y >= w.MinY && p.Y <= w.MaxY
}

// Center returns the middle of the workspace.
func (w Workspace) Center() polar.Vec2 {
	return polar.Vec((w.MinX+w.MaxX)/2, (w.MinY+w.MaxY)/2)
}

func decodeWorkspaces() ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Workspaces lists all known workspaces.
func Workspaces() ([]Workspace, error) {
	return decodeWorkspaces()
}

// GetWorkspace looks a workspace up by name.
func GetWorkspace(name string) (*Workspace, error) {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("cant decode workspaces: %w", err)
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkspace, name)
}
