package control_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	"painter3d/control"
	"painter3d/geom"
	"painter3d/scene"
)

func TestKeys(t *testing.T) {
	var k control.Keys
	k.Set(control.KeyForward, true)
	k.Set(control.KeyUp, true)
	assert.True(t, k.Has(control.KeyForward))
	assert.True(t, k.Has(control.KeyUp))
	assert.False(t, k.Has(control.KeyBack))

	k.Set(control.KeyForward, false)
	assert.False(t, k.Has(control.KeyForward))
	assert.True(t, k.Has(control.KeyUp))
}

func TestStep(t *testing.T) {
	ctl := control.Controller{
		Speed:    1,
		TurnRate: 1.0 / 20,
		Bounds:   scene.Bounds{Width: 200, Height: 50, Depth: 200},
	}

	Convey("Given a camera at the origin facing +X", t, func() {
		cam := geom.NewCamera(geom.Vector3{}, math.Pi/4, 0)

		Convey("a centered pointer and no keys leave it alone", func() {
			ctl.Step(cam, 0, 400, 800)
			So(cam.Vector3, ShouldResemble, geom.Vector3{})
			So(cam.YRotation(), ShouldEqual, 0.0)
		})

		Convey("the pointer at the right edge turns towards +Z", func() {
			ctl.Step(cam, 0, 800, 800)
			So(cam.YRotation(), ShouldAlmostEqual, 0.025, 1e-12)
		})

		Convey("the pointer at the left edge turns the other way without flipping the view", func() {
			ctl.Step(cam, 0, 0, 800)
			So(cam.YRotation(), ShouldAlmostEqual, 2*math.Pi-0.025, 1e-12)
		})

		Convey("forward walks along the heading", func() {
			ctl.Step(cam, control.KeyForward, 400, 800)
			So(cam.X, ShouldAlmostEqual, 1, 1e-12)
			So(cam.Z, ShouldAlmostEqual, 0, 1e-12)
		})

		Convey("back walks against the heading", func() {
			ctl.Step(cam, control.KeyBack, 400, 800)
			So(cam.X, ShouldAlmostEqual, -1, 1e-12)
		})

		Convey("left and right strafe", func() {
			ctl.Step(cam, control.KeyRight, 400, 800)
			So(cam.Z, ShouldAlmostEqual, 1, 1e-12)
			ctl.Step(cam, control.KeyLeft, 400, 800)
			ctl.Step(cam, control.KeyLeft, 400, 800)
			So(cam.Z, ShouldAlmostEqual, -1, 1e-12)
		})

		Convey("up and down change height", func() {
			ctl.Step(cam, control.KeyUp, 400, 800)
			So(cam.Y, ShouldEqual, 1.0)
			ctl.Step(cam, control.KeyDown|control.KeyUp, 400, 800)
			So(cam.Y, ShouldEqual, 1.0)
		})

		Convey("the camera cannot leave the world", func() {
			for i := 0; i < 500; i++ {
				ctl.Step(cam, control.KeyForward|control.KeyUp, 400, 800)
			}
			So(cam.X, ShouldEqual, 100.0)
			So(cam.Y, ShouldEqual, 25.0)
		})

		Convey("a zero-width window does not turn", func() {
			ctl.Step(cam, 0, 10, 0)
			So(cam.YRotation(), ShouldEqual, 0.0)
		})
	})
}
