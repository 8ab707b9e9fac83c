package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/gsinfogaurav-sudo/music/internal/stats"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Options configures a desktop run.
type Options struct {
	Seed      uint64
	Volume    float64
	RecordDir string
	UseMIDI   bool
	Stats     *stats.Collector
	Log       *zap.Logger
}

// noteKeys binds the home row to the keyboard, left to right.
var noteKeys = []struct {
	Key  glfw.Key
	Note string
}{
	{glfw.KeyA, "C"},
	{glfw.KeyS, "D"},
	{glfw.KeyD, "E"},
	{glfw.KeyF, "F"},
	{glfw.KeyG, "G"},
	{glfw.KeyH, "A"},
	{glfw.KeyJ, "B"},
}

// RunDesktop opens the window and runs the frame loop until the player
// quits from the menu.
func RunDesktop(opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	window, err := initWindow()
	if err != nil {
		return fmt.Errorf("init window: %w", err)
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	renderer, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer renderer.Destroy()
	if err := renderer.InitFont(); err != nil {
		return fmt.Errorf("init font: %w", err)
	}

	if err := InitAudio(); err != nil {
		// The trainer still works silently.
		log.Warn("audio unavailable", zap.Error(err))
	}
	SetVolume(opts.Volume)

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("session starting", zap.Uint64("seed", seed))

	bus := NewEventBus()
	recorder := NewRecorder(opts.RecordDir)
	bus.Subscribe(EventNotePlayed, func(ev Event) {
		if ev.Mode == ModeFreePlay {
			recorder.Add(ev.Note)
		}
	})
	if opts.Stats != nil {
		bus.Subscribe(EventAnswerJudged, func(ev Event) {
			opts.Stats.Record(ev.Mode.String(), ev.Correct)
		})
	}
	bus.Subscribe(EventSessionComplete, func(ev Event) {
		log.Info("session complete", zap.String("mode", ev.Mode.String()))
	})

	var midiIn *MIDIInput
	if opts.UseMIDI {
		midiIn, err = OpenMIDI()
		if err != nil {
			log.Warn("midi unavailable", zap.Error(err))
		} else {
			defer midiIn.Close()
			log.Info("midi input connected")
		}
	}

	g := &loop{
		window:   window,
		renderer: renderer,
		input:    NewInput(),
		bus:      bus,
		recorder: recorder,
		midiIn:   midiIn,
		log:      log,
		seed:     seed,
		mode:     ModeMenu,
	}
	g.run()

	if path, err := recorder.Flush(); err != nil {
		log.Warn("recording not saved", zap.Error(err))
	} else if path != "" {
		log.Info("recording saved", zap.String("path", path))
	}
	return nil
}

type loop struct {
	window   *glfw.Window
	renderer *Renderer
	input    *Input
	bus      *EventBus
	recorder *Recorder
	midiIn   *MIDIInput
	log      *zap.Logger

	seed uint64
	mode Mode
	sess *Session

	pressedFlash map[string]float64
	elapsed      float64
}

func (g *loop) run() {
	g.pressedFlash = make(map[string]float64)
	last := glfw.GetTime()
	for !g.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		g.elapsed += dt

		glfw.PollEvents()
		g.update(dt)
		g.render()
		g.window.SwapBuffers()
	}
}

func (g *loop) update(dt float64) {
	for n := range g.pressedFlash {
		g.pressedFlash[n] -= dt
		if g.pressedFlash[n] <= 0 {
			delete(g.pressedFlash, n)
		}
	}

	if g.input.JustPressed(g.window, glfw.KeyEscape) {
		if g.mode == ModeMenu {
			g.window.SetShouldClose(true)
			return
		}
		// Leaving a mode drops the session and any pending feedback.
		g.enterMode(ModeMenu)
		return
	}

	switch g.mode {
	case ModeMenu:
		g.updateMenu()
	default:
		g.updateMode(dt)
	}
}

func (g *loop) updateMenu() {
	for i, e := range menuEntries {
		if g.input.JustPressed(g.window, glfw.Key1+glfw.Key(i)) {
			PlaySound(SoundMenuSelect)
			g.enterMode(e.Mode)
			return
		}
	}
}

func (g *loop) enterMode(mode Mode) {
	if g.mode == ModeFreePlay && mode != ModeFreePlay {
		if path, err := g.recorder.Flush(); err != nil {
			g.log.Warn("recording not saved", zap.Error(err))
		} else if path != "" {
			g.log.Info("recording saved", zap.String("path", path))
		}
	}
	g.log.Info("mode change", zap.String("mode", mode.String()))
	g.mode = mode
	g.sess = NewSession(mode, g.nextSeed(), g.bus)
	if g.sess != nil {
		g.sess.Start()
	}
}

// nextSeed derives a fresh session seed so replaying a mode gets new draws.
func (g *loop) nextSeed() uint64 {
	g.seed = g.seed*6364136223846793005 + 1442695040888963407
	return g.seed
}

func (g *loop) updateMode(dt float64) {
	if g.sess != nil {
		g.sess.Tick(dt)
	}

	cx, cy := CursorFB(g.window, WindowWidth, WindowHeight)
	clicked := g.input.JustClicked(g.window, glfw.MouseButtonLeft)

	// Note input: clicked key, bound home-row keys, pending MIDI events.
	// Every note gathered this frame is submitted; near-simultaneous
	// chord presses must all reach the selection before any check.
	var notes []string
	if clicked {
		if n := keyAt(float32(cx), float32(cy)); n != "" {
			notes = append(notes, n)
		}
	}
	for _, nk := range noteKeys {
		if g.input.JustPressed(g.window, nk.Key) {
			notes = append(notes, nk.Note)
		}
	}

	midiCheck := false
	if g.midiIn != nil {
		notes, midiCheck = g.drainMIDI(notes)
	}

	for _, n := range notes {
		g.playNote(n)
	}

	switch g.mode {
	case ModeFreePlay:
		return
	case ModeTimeSignature:
		if clicked {
			if beats := beatAt(float32(cx), float32(cy)); beats > 0 && g.sess.Active() {
				PlaySound(SoundMetronome)
				g.sess.SubmitBeats(beats)
			}
		}
	case ModeChordBuilder:
		check := midiCheck || g.input.JustPressed(g.window, glfw.KeyEnter)
		if clicked && checkButtonRect().contains(float32(cx), float32(cy)) {
			check = true
		}
		if check && g.sess.Active() {
			g.sess.SubmitCheck()
		}
	}

	if g.sess.Machine.Complete() && g.input.JustPressed(g.window, glfw.KeySpace) {
		PlaySound(SoundMenuSelect)
		g.enterMode(g.mode)
	}
}

// drainMIDI appends every pending note event from the listener
// goroutine to notes and reports whether a settled chord group asks
// for a check. The check is applied by the caller only after all
// drained notes have been submitted.
func (g *loop) drainMIDI(notes []string) ([]string, bool) {
	check := false
	for {
		select {
		case ev := <-g.midiIn.Events():
			if ev.Note != "" {
				notes = append(notes, ev.Note)
			}
			if ev.Chord != nil {
				check = true
			}
		default:
			return notes, check
		}
	}
}

func (g *loop) playNote(name string) {
	g.pressedFlash[name] = 0.15
	notePlayed(g.bus, g.mode, name)
	if g.sess != nil && g.sess.Active() {
		g.sess.SubmitNote(name)
	}
}

func (g *loop) render() {
	fbW, fbH := g.window.GetFramebufferSize()
	g.renderer.BeginFrame(fbW, fbH)

	switch g.mode {
	case ModeMenu:
		renderMenu(g.renderer)
	default:
		pressed := make(map[string]bool, len(g.pressedFlash))
		for n := range g.pressedFlash {
			pressed[n] = true
		}
		var highlighted map[string]bool
		if g.sess != nil {
			highlighted = g.sess.HighlightedNotes()
			renderHUD(g.renderer, g.sess)
		} else {
			renderFreePlayHUD(g.renderer, g.recorder != nil)
		}

		cx, cy := CursorFB(g.window, WindowWidth, WindowHeight)
		if g.mode == ModeTimeSignature {
			renderBeatButtons(g.renderer, float32(cx), float32(cy))
		} else {
			renderKeyboard(g.renderer, pressed, highlighted, g.elapsed)
		}
		if g.mode == ModeChordBuilder {
			renderCheckButton(g.renderer, float32(cx), float32(cy))
		}
	}

	g.renderer.FlushText(WindowWidth, WindowHeight)
}
