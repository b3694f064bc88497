package replay

import "github.com/younwookim/personality/internal/application/system"

// Version is written into new recordings
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	JP bool    `json:"jp,omitempty"` // JumpPressed
	JR bool    `json:"jr,omitempty"` // JumpReleased
	FI bool    `json:"fi,omitempty"` // Fire
	AX float64 `json:"ax"`           // Aim X, world coordinates
	AY float64 `json:"ay"`           // Aim Y, world coordinates
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures one frame of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		JP: in.JumpPressed,
		JR: in.JumpReleased,
		FI: in.Fire,
		AX: in.AimX,
		AY: in.AimY,
	}
}

// Input converts the recorded frame back to simulation input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		Fire:         fi.FI,
		AimX:         fi.AX,
		AimY:         fi.AY,
	}
}
