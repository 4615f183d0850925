// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer manages the try-on session: the body and outfit
// attachment slots, their load lifecycle, auto-fitting, and the
// base-transform + user-offset composition that positions the outfit
// on the body.
package viewer

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"

	"github.com/fitroom/fitroom/assets"
	"github.com/fitroom/fitroom/fit"
	"github.com/fitroom/fitroom/scene"
)

// Phase is the lifecycle state of an attachment slot.
type Phase int32

const (
	// Empty means nothing is attached and no load is in flight.
	Empty Phase = iota

	// Loading means a load has been issued and its result is pending.
	Loading

	// Attached means a node is attached to the scene.
	Attached
)

func (ph Phase) String() string {
	switch ph {
	case Loading:
		return "loading"
	case Attached:
		return "attached"
	}
	return "empty"
}

// Slot is one attachment point in the scene (body or outfit). Each slot
// holds at most one attached node; attaching a new one detaches and
// destroys the previous one. The generation counter invalidates
// in-flight loads that have been superseded: only a completion carrying
// the current generation may attach.
type Slot struct {

	// Phase is the current lifecycle phase.
	Phase Phase

	// URL is the source of the current or pending content.
	URL string

	// Node is the attached subtree, nil unless Phase is Attached.
	Node *scene.Group

	// Err is the classified failure of the most recent load, cleared
	// when a new load begins.
	Err *LoadError

	// gen is bumped on every new load or clear for this slot.
	gen uint64
}

// Config configures a [Session].
type Config struct {

	// DefaultBodyURL is the asset to load as the initial mannequin
	// body. Empty means start with the built-in procedural mannequin.
	DefaultBodyURL string

	// Synchronous runs loads and completions inline instead of on
	// goroutines, for batch rendering and tests.
	Synchronous bool
}

// Session is the try-on session: one scene with one body slot and one
// outfit slot, plus the fitting state for the current outfit. All
// methods must be called from a single goroutine (the UI loop); loads
// run in the background and deliver their results during [Session.Update].
type Session struct {

	// Scene is the scene graph being viewed.
	Scene *scene.Scene

	// Loader loads 3D assets.
	Loader assets.Loader

	// Images loads image assets (billboards, environment maps).
	Images assets.ImageLoader

	// Uploads backs user-provided file uploads; optional.
	Uploads *assets.UploadStore

	// Config is the session configuration.
	Config Config

	// Body is the avatar attachment slot.
	Body Slot

	// Outfit is the outfit attachment slot.
	Outfit Slot

	// Selection is the currently selected outfit, kept so a body swap
	// can re-fit or rebuild it. Nil when no outfit is selected.
	Selection *Outfit

	// Base is the outfit's base transform, captured when the outfit is
	// attached or auto-fitted. It is replaced wholesale, never merged.
	Base fit.Transform

	// BaseValid reports whether Base has been captured for the current
	// outfit; offset commands are ignored until it has.
	BaseValid bool

	// Offset is the user-applied delta on top of Base.
	Offset fit.Offset

	// Step is the current nudge sensitivity.
	Step fit.StepMode

	// BodyBounds is the attached body's world bounding box, the fitting
	// target for auto-fit.
	BodyBounds math32.Box3

	// OnError, if set, receives classified load failures; otherwise
	// they are logged.
	OnError func(le *LoadError)

	// customBody is set once a non-default body is attached; after
	// that, requests for the default body are ignored so a late default
	// load can never clobber the user's own avatar.
	customBody bool

	// pending queues load completions for the next Update.
	pending chan func()
}

// NewSession returns a new session with an empty scene and the standard
// URL loader. If the config names a default body it is loaded; otherwise
// the built-in procedural mannequin is attached.
func NewSession(cfg Config) *Session {
	ld := assets.NewURLLoader()
	ss := &Session{
		Scene:   scene.NewScene("fitroom"),
		Loader:  ld,
		Images:  ld,
		Config:  cfg,
		Offset:  fit.IdentityOffset(),
		Step:    fit.Normal,
		pending: make(chan func(), 16),
	}
	ss.BodyBounds.SetEmpty()
	if cfg.DefaultBodyURL != "" {
		ss.LoadBody(cfg.DefaultBodyURL)
	} else {
		ss.attachBody(ss.Body.gen, "", Mannequin())
	}
	return ss
}

// Close releases session resources (uploaded files).
func (ss *Session) Close() error {
	if ss.Uploads != nil {
		return ss.Uploads.Close()
	}
	return nil
}

// dispatch runs a load, inline in synchronous mode, otherwise on its
// own goroutine.
func (ss *Session) dispatch(load func()) {
	if ss.Config.Synchronous {
		load()
		return
	}
	go load()
}

// post queues a completion for the next [Session.Update], or runs it
// inline in synchronous mode.
func (ss *Session) post(fn func()) {
	if ss.Config.Synchronous {
		fn()
		return
	}
	ss.pending <- fn
}

// Update delivers pending load completions and refreshes world
// transforms and bounds. Call once per UI frame.
func (ss *Session) Update() {
	for {
		select {
		case fn := <-ss.pending:
			fn()
		default:
			ss.Scene.UpdateWorld()
			return
		}
	}
}

func (ss *Session) fail(le *LoadError) {
	if le == nil {
		return
	}
	if ss.OnError != nil {
		ss.OnError(le)
		return
	}
	errors.Log(le)
}

// LoadBody loads the asset at the given URL as the avatar body,
// replacing the current one when the load completes. Requests for the
// default body are ignored once a custom body has been attached.
func (ss *Session) LoadBody(url string) {
	if ss.customBody && url == ss.Config.DefaultBodyURL {
		return
	}
	ss.Body.gen++
	gen := ss.Body.gen
	ss.Body.URL = url
	ss.Body.Phase = Loading
	ss.Body.Err = nil
	ss.dispatch(func() {
		gp, err := ss.Loader.Load(context.Background(), url)
		ss.post(func() {
			if err != nil {
				ss.finishLoadError(&ss.Body, gen, url, err)
				return
			}
			ss.attachBody(gen, url, gp)
		})
	})
}

// LoadBodyUpload stores user-uploaded body bytes and loads them as the
// avatar body. The previous body upload is released.
func (ss *Session) LoadBodyUpload(name string, data []byte) {
	url, err := ss.putUpload("body", name, data)
	if err != nil {
		ss.fail(Classify(name, err))
		return
	}
	ss.LoadBody(url)
}

// LoadOutfitUpload stores user-uploaded outfit bytes and selects them
// as an asset outfit.
func (ss *Session) LoadOutfitUpload(name string, data []byte) {
	url, err := ss.putUpload("outfit", name, data)
	if err != nil {
		ss.fail(Classify(name, err))
		return
	}
	ss.SelectOutfit(Outfit{Name: name, Kind: Asset, URL: url})
}

func (ss *Session) putUpload(key, name string, data []byte) (string, error) {
	if ss.Uploads == nil {
		us, err := assets.NewUploadStore()
		if err != nil {
			return "", err
		}
		ss.Uploads = us
	}
	return ss.Uploads.Put(key, name, data)
}

// finishLoadError records a failed load for a slot: the slot drops back
// to Empty unless something is still attached from before.
func (ss *Session) finishLoadError(sl *Slot, gen uint64, url string, err error) {
	if gen != sl.gen {
		return // superseded; the newer load owns the slot now
	}
	if sl.Node != nil {
		sl.Phase = Attached
		sl.URL = "" // pending URL did not take
	} else {
		sl.Phase = Empty
	}
	sl.Err = Classify(url, err)
	ss.fail(sl.Err)
}

// attachBody swaps the loaded body into the scene, recentres it on the
// origin, and re-fits the current outfit to it.
func (ss *Session) attachBody(gen uint64, url string, gp *scene.Group) {
	if gen != ss.Body.gen {
		gp.Destroy()
		return
	}
	if old := ss.Body.Node; old != nil {
		old.Delete()
	}
	ss.Scene.AddChild(gp)
	ss.Body.Node = gp
	ss.Body.URL = url
	ss.Body.Phase = Attached
	ss.customBody = url != "" && url != ss.Config.DefaultBodyURL

	// recentre: feet on the ground plane, centered on the y axis
	ss.Scene.UpdateWorld()
	bb := gp.WorldBBox
	if !bb.IsEmpty() {
		ctr := bb.Center()
		gp.Pose.Pos.SetAdd(math32.Vec3(-ctr.X, -bb.Min.Y, -ctr.Z))
		ss.Scene.UpdateWorld()
	}
	ss.BodyBounds = gp.WorldBBox

	ss.refitOutfit()
}

// refitOutfit re-runs fitting for the attached outfit against the
// current body, discarding any user offsets. Procedural outfits are
// rebuilt instead, since they derive their geometry from the body.
func (ss *Session) refitOutfit() {
	if ss.Outfit.Phase != Attached || ss.Outfit.Node == nil {
		return
	}
	if ss.Selection != nil && ss.Selection.Kind.Procedural() {
		ss.SelectOutfit(*ss.Selection)
		return
	}
	base, err := fit.AutoFit(ss.BodyBounds, ss.Outfit.Node)
	if err != nil {
		base = fit.Capture(ss.Outfit.Node)
	}
	ss.setBase(base)
}

// attachOutfit swaps the loaded outfit into the scene and establishes
// its base transform, auto-fitting against the body when one is
// attached.
func (ss *Session) attachOutfit(gen uint64, o Outfit, gp *scene.Group) {
	if gen != ss.Outfit.gen {
		gp.Destroy()
		return
	}
	if old := ss.Outfit.Node; old != nil {
		old.Delete()
	}
	ss.Scene.AddChild(gp)
	ss.Outfit.Node = gp
	ss.Outfit.URL = o.URL
	ss.Outfit.Phase = Attached
	ss.Scene.UpdateWorld()

	var base fit.Transform
	if o.Kind.Procedural() {
		// the shell is already shaped to the body; keep its pose as-is
		base = fit.Capture(gp)
	} else if b, err := fit.AutoFit(ss.BodyBounds, gp); err == nil {
		base = b
	} else {
		// no body yet, or degenerate outfit bounds: attach as-is
		base = fit.Capture(gp)
	}
	ss.setBase(base)
}

// setBase replaces the base transform, resets the user offset to the
// identity, and recomposes the outfit pose.
func (ss *Session) setBase(base fit.Transform) {
	ss.Base = base
	ss.BaseValid = true
	ss.Offset.Reset()
	ss.recompose()
}

// recompose recomputes the outfit's pose from the base transform and
// the current offset. It is pure in those inputs, so repeated calls
// never accumulate drift.
func (ss *Session) recompose() {
	if !ss.BaseValid || ss.Outfit.Node == nil {
		return
	}
	fit.Recompose(ss.Base, ss.Offset).Apply(ss.Outfit.Node)
	ss.Scene.UpdateWorld()
}

// AutoFit re-runs automatic fitting for the attached outfit on demand,
// replacing the base transform and clearing user offsets. It returns
// a NotReady error when the body or outfit is missing.
func (ss *Session) AutoFit() error {
	if ss.Outfit.Phase != Attached || ss.Outfit.Node == nil {
		return Classify("", fit.ErrNotReady)
	}
	base, err := fit.AutoFit(ss.BodyBounds, ss.Outfit.Node)
	if err != nil {
		return Classify(ss.Outfit.URL, err)
	}
	ss.setBase(base)
	return nil
}

// Apply applies offset commands to the current outfit and recomposes
// its pose. Commands are ignored with a NotReady error until an outfit
// is attached and its base transform captured.
func (ss *Session) Apply(cmds ...fit.Command) error {
	if !ss.BaseValid || ss.Outfit.Node == nil {
		return Classify("", fit.ErrNotReady)
	}
	ss.Offset.Exec(cmds...)
	ss.recompose()
	return nil
}

// Nudge step sizes at Normal sensitivity; [Session.Step] scales them.
const (
	PosStep   = 0.01
	RotStep   = 1
	ScaleStep = 0.01
)

// NudgePos nudges the position offset along one axis by the signed
// number of steps, scaled by the current step mode.
func (ss *Session) NudgePos(x, y, z float32) error {
	f := ss.Step.Factor() * PosStep
	return ss.Apply(fit.NudgePos{X: x * f, Y: y * f, Z: z * f})
}

// NudgeRot nudges the rotation offset, in steps, scaled by the current
// step mode.
func (ss *Session) NudgeRot(x, y, z float32) error {
	f := ss.Step.Factor() * RotStep
	return ss.Apply(fit.NudgeRot{X: x * f, Y: y * f, Z: z * f})
}

// NudgeScale nudges the uniform scale offset, in steps, scaled by the
// current step mode.
func (ss *Session) NudgeScale(d float32) error {
	return ss.Apply(fit.NudgeScale(d * ss.Step.Factor() * ScaleStep))
}

// ResetOffsets resets user offsets to the identity, returning the
// outfit to its base (auto-fitted) pose.
func (ss *Session) ResetOffsets() error {
	return ss.Apply(fit.Reset{})
}

// ClearOutfit detaches and destroys the current outfit, invalidates any
// in-flight outfit load, and clears the fitting state.
func (ss *Session) ClearOutfit() {
	ss.Outfit.gen++
	if ss.Outfit.Node != nil {
		ss.Outfit.Node.Delete()
	}
	ss.Outfit = Slot{gen: ss.Outfit.gen}
	ss.Selection = nil
	ss.BaseValid = false
	ss.Base = fit.Transform{}
	ss.Offset.Reset()
}

// LoadEnvironment loads an environment lighting image. It is best
// effort: failures are logged and leave the current environment in
// place, they never surface as session errors.
func (ss *Session) LoadEnvironment(url string) {
	ss.dispatch(func() {
		tx, err := ss.Images.LoadTexture(context.Background(), "environment", url)
		ss.post(func() {
			if err != nil {
				logx.PrintlnWarn("viewer: environment load failed: ", err)
				return
			}
			ss.Scene.Environment = tx
		})
	})
}
