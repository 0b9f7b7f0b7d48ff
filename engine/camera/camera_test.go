package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitControllerPositionFromSpherical(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(10),
		WithAzimuth(0),
		WithElevation(0),
		WithTarget(0, 2, 0),
	)

	// Azimuth 0 with zero elevation places the camera on +Z relative to the target.
	x, y, z := ctrl.Position()
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 2, y, 1e-5)
	assert.InDelta(t, 12, z, 1e-5)
}

func TestOrbitControllerClampsBounds(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadiusBounds(2, 20),
		WithElevationBounds(-0.5, 0.5),
	)

	ctrl.SetRadius(100)
	assert.Equal(t, float32(20), ctrl.Radius())
	ctrl.SetRadius(0.1)
	assert.Equal(t, float32(2), ctrl.Radius())

	ctrl.SetElevation(3)
	assert.Equal(t, float32(0.5), ctrl.Elevation())
	ctrl.SetElevation(-3)
	assert.Equal(t, float32(-0.5), ctrl.Elevation())
}

func TestOrbitStepsMovePosition(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(5), WithAzimuth(0), WithElevation(0))
	x0, _, z0 := ctrl.Position()

	ctrl.OrbitRight()
	x1, _, z1 := ctrl.Position()
	assert.NotEqual(t, [2]float32{x0, z0}, [2]float32{x1, z1})

	// Distance from the target never changes while orbiting.
	dist := math32.Sqrt(x1*x1 + z1*z1)
	assert.InDelta(t, 5, dist, 1e-4)
}

func TestAutoOrbitDrift(t *testing.T) {
	ctrl := NewOrbitController(WithAutoOrbitSpeed(0.5))
	start := ctrl.Azimuth()

	ctrl.AutoOrbit(2.0)
	assert.InDelta(t, start+1.0, ctrl.Azimuth(), 1e-6)

	// Bad dt values leave the azimuth untouched.
	ctrl.AutoOrbit(-1)
	ctrl.AutoOrbit(math32.NaN())
	ctrl.AutoOrbit(math32.Inf(1))
	assert.InDelta(t, start+1.0, ctrl.Azimuth(), 1e-6)
}

func TestAutoOrbitDisabledByDefault(t *testing.T) {
	ctrl := NewOrbitController()
	start := ctrl.Azimuth()
	ctrl.AutoOrbit(1.0)
	assert.Equal(t, start, ctrl.Azimuth())
}

func TestCameraMatricesFollowController(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10), WithAzimuth(0), WithElevation(0))
	cam := NewCamera(WithController(ctrl), WithAspect(16.0/9.0))

	vp0 := cam.ViewProjectionMatrix()

	ctrl.OrbitRight()
	cam.Update()
	vp1 := cam.ViewProjectionMatrix()
	assert.NotEqual(t, vp0, vp1)
}

func TestCameraUniformCarriesPosition(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(4), WithAzimuth(0), WithElevation(0))
	cam := NewCamera(WithController(ctrl))

	u := cam.GPUUniform()
	assert.InDelta(t, 0, u.CameraPosition[0], 1e-5)
	assert.InDelta(t, 4, u.CameraPosition[2], 1e-5)
	assert.Equal(t, cam.ViewProjectionMatrix(), u.ViewProj)

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, 80, u.Size())
}

func TestCameraWithoutControllerIsInert(t *testing.T) {
	cam := NewCamera()
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

	cam.Update()
	assert.Equal(t, identity, cam.ViewMatrix())
	assert.NotNil(t, cam.BindGroupProvider())
}
