package game

// The engine delegates all presentation through the narrow interfaces in
// this file. Implementations live in the platform layer; the no-op
// versions below serve headless runs and tests.

// ItemPresenter creates, moves and destroys the visual object for each
// falling item. The engine only ever refers to visuals through opaque
// handles.
type ItemPresenter interface {
	Create(kind Kind, lane Lane, y float64) Handle
	Reposition(h Handle, y float64)
	Destroy(h Handle)
	Clear()
}

// HUDPresenter renders score, remaining time and lives as text, and owns
// the terminal message surface.
type HUDPresenter interface {
	RenderScore(score int)
	RenderTime(seconds int)
	RenderLife(count int)
	ShowMessage(text string)
	HideMessage()
}

// BasketPositioner moves the basket visual to a lane.
type BasketPositioner interface {
	MoveTo(lane Lane)
}

// Effect names understood by the SoundEmitter.
const (
	SoundPickup    = "pickup"
	SoundExplosion = "explosion"
)

// SoundEmitter plays a named short effect. Fire and forget: the engine
// never consumes a result.
type SoundEmitter interface {
	Play(name string)
}

// Collaborators bundles the engine's presentation dependencies. Nil
// fields are replaced with no-ops, so tests pass only what they observe.
type Collaborators struct {
	Items  ItemPresenter
	HUD    HUDPresenter
	Basket BasketPositioner
	Sound  SoundEmitter
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Items == nil {
		c.Items = &NopItemPresenter{}
	}
	if c.HUD == nil {
		c.HUD = NopHUDPresenter{}
	}
	if c.Basket == nil {
		c.Basket = NopBasketPositioner{}
	}
	if c.Sound == nil {
		c.Sound = NopSoundEmitter{}
	}
	return c
}

// NopItemPresenter discards visuals but still hands out unique handles.
type NopItemPresenter struct {
	next Handle
}

func (p *NopItemPresenter) Create(Kind, Lane, float64) Handle {
	p.next++
	return p.next
}
func (p *NopItemPresenter) Reposition(Handle, float64) {}
func (p *NopItemPresenter) Destroy(Handle)             {}
func (p *NopItemPresenter) Clear()                     {}

// NopHUDPresenter ignores all HUD updates.
type NopHUDPresenter struct{}

func (NopHUDPresenter) RenderScore(int)    {}
func (NopHUDPresenter) RenderTime(int)     {}
func (NopHUDPresenter) RenderLife(int)     {}
func (NopHUDPresenter) ShowMessage(string) {}
func (NopHUDPresenter) HideMessage()       {}

// NopBasketPositioner ignores basket moves.
type NopBasketPositioner struct{}

func (NopBasketPositioner) MoveTo(Lane) {}

// NopSoundEmitter ignores all effects.
type NopSoundEmitter struct{}

func (NopSoundEmitter) Play(string) {}
