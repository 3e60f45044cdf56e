package panel

import "github.com/Carmen-Shannon/oxy-orrery/internal/controls"

// Message types on the control WebSocket.
const (
	TypeState  = "state"
	TypeSlider = "slider"
	TypePause  = "pause"
	TypeTheme  = "theme"
)

// Outcomes counted per inbound message.
const (
	ResultOK      = "ok"
	ResultLimited = "limited"
	ResultInvalid = "invalid"
)

// StateMessage is pushed to every client after a control changes.
type StateMessage struct {
	Type     string                  `json:"type"`
	Controls []controls.ControlState `json:"controls"`
}

// ClientMessage is sent by the page when the user moves a slider or presses a button.
type ClientMessage struct {
	Type  string  `json:"type"`
	ID    string  `json:"id,omitempty"`
	Value float64 `json:"value,omitempty"`
}
