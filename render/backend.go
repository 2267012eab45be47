package render

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. The host
// creates the window on it before the game loop starts; Game calls
// BeginFrame/EndFrame around Update and Draw/Layout during rendering.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
