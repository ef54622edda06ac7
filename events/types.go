package events

// EventType represents the kind of lab event
type EventType int

const (
	// EventPointerMoved signals pointer motion in screen cell space
	// Trigger: input handler on mouse motion
	// Consumer: App (routes to galaxy/swarm/cube) | Payload: *PointerPayload
	EventPointerMoved EventType = iota

	// EventPointerClicked signals a pointer button press
	// Trigger: input handler on mouse press
	// Consumer: App (bloom pulse, color pick) | Payload: *PointerPayload
	EventPointerClicked

	// EventModeChanged signals a swarm layout mode switch
	// Trigger: input handler on mode key
	// Consumer: swarm layer, HUD renderer | Payload: *ModeChangedPayload
	EventModeChanged

	// EventColorSampled signals a color picked from the galaxy cloud
	// Trigger: App on click over a galaxy point
	// Consumer: palette store, cube layer | Payload: *ColorSampledPayload
	EventColorSampled

	// EventFormationComplete signals spiral formation has settled
	// Trigger: galaxy phase machine, once, on entering PhaseComplete
	// Consumer: App (schedules cube growth) | Payload: *FormationCompletePayload
	EventFormationComplete

	// EventCubeGrowth streams cube growth progress every tick
	// Trigger: cube growth ticker while animating
	// Consumer: swarm layer (repulsion radius), HUD | Payload: *CubeGrowthPayload
	EventCubeGrowth

	// EventCubeGrowthComplete signals cube growth reached full scale
	// Trigger: cube growth ticker, exactly once
	// Consumer: App (completion sound) | Payload: nil
	EventCubeGrowthComplete

	// EventBloomPulse signals a bloom intensity spike
	// Trigger: App on click during PhaseComplete
	// Consumer: galaxy layer | Payload: *BloomPulsePayload
	EventBloomPulse

	// EventPaletteChanged signals the picked-color palette was modified
	// Trigger: palette store on add/evict/load
	// Consumer: HUD renderer, persistence writer | Payload: *PaletteChangedPayload
	EventPaletteChanged

	// EventFPSSample streams the frame rate estimate
	// Trigger: App once per sampling window
	// Consumer: HUD renderer | Payload: *FPSSamplePayload
	EventFPSSample

	// EventSoundRequest asks the audio layer to play a procedural sound
	// Trigger: any layer | Consumer: audio chime player | Payload: *SoundRequestPayload
	EventSoundRequest

	// eventTypeCount bounds the enum for name lookup
	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventPointerMoved:       "PointerMoved",
	EventPointerClicked:     "PointerClicked",
	EventModeChanged:        "ModeChanged",
	EventColorSampled:       "ColorSampled",
	EventFormationComplete:  "FormationComplete",
	EventCubeGrowth:         "CubeGrowth",
	EventCubeGrowthComplete: "CubeGrowthComplete",
	EventBloomPulse:         "BloomPulse",
	EventPaletteChanged:     "PaletteChanged",
	EventFPSSample:          "FPSSample",
	EventSoundRequest:       "SoundRequest",
}

// String returns the event name for logs and tests
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// Event pairs a type with its payload. Payload is nil or a pointer to
// the payload struct documented on the EventType constant
type Event struct {
	Type    EventType
	Payload any
}
