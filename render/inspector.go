package render

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/core"
)

const maxEventLog = 24

// Inspector is a Dear ImGui overlay showing the live session state and a
// rolling log of emitted events, for poking at the state machine while
// playing.
type Inspector struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	eventLog      []string
}

// NewInspector returns an inspector keeping the given number of frame
// time samples.
func NewInspector(historyFrames int) *Inspector {
	return &Inspector{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record appends a transition's events to the rolling log.
func (in *Inspector) Record(events []core.Event) {
	for _, ev := range events {
		line := ev.Kind.String()
		switch ev.Kind {
		case core.EventLineCleared, core.EventTetrisCleared:
			line = fmt.Sprintf("%s (%d rows)", ev.Kind, ev.Rows)
		case core.EventRejected:
			line = fmt.Sprintf("%s (%s)", ev.Kind, ev.Reason)
		}
		in.eventLog = append(in.eventLog, line)
	}
	if len(in.eventLog) > maxEventLog {
		in.eventLog = in.eventLog[len(in.eventLog)-maxEventLog:]
	}
}

// Render draws the inspector window. Must run between the backend's
// BeginFrame and EndFrame.
func (in *Inspector) Render(snap core.Snapshot, deltaTime float32) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames

	state := "not started"
	switch {
	case snap.Over:
		state = "game over"
	case snap.Started:
		state = "running"
	}
	imgui.Text(fmt.Sprintf("State: %s", state))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d  Rows: %d", snap.Level, snap.Rows))
	if snap.Interval > 0 {
		imgui.Text(fmt.Sprintf("Drop Interval: %d ms", snap.Interval))
	} else {
		imgui.Text("Drop Interval: stopped")
	}
	imgui.Text(fmt.Sprintf("Active: %s r%d (%d,%d)",
		snap.Active.Kind, snap.Active.Rotation, snap.Active.X, snap.Active.Y))
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if imgui.TreeNodeStr("Event Log") {
		for i := len(in.eventLog) - 1; i >= 0; i-- {
			imgui.BulletText(in.eventLog[i])
		}
		imgui.TreePop()
	}

	imgui.End()
}
