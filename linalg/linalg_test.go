package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.Equal(t, 2, b.DominantAxis())
	assert.True(t, Vec3{0, 0, 0}.IsZero(1e-9))
}

func TestMat3InverseIdentity(t *testing.T) {
	m := Identity()
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.ApproxEqual(Identity(), 1e-9))
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := Mat3{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.Mul(inv)
	assert.True(t, prod.ApproxEqual(Identity(), 1e-9))
}

func TestMat3InverseSingular(t *testing.T) {
	m := Mat3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}
	_, err := m.Inverse()
	require.Error(t, err)
}

func TestFitRotationRecoversKnownRotation(t *testing.T) {
	// 90 degree rotation about Z.
	theta := math.Pi / 2
	rot := Mat3{
		{math.Cos(theta), -math.Sin(theta), 0},
		{math.Sin(theta), math.Cos(theta), 0},
		{0, 0, 1},
	}
	ideal := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	observed := make([]Vec3, len(ideal))
	for i, v := range ideal {
		observed[i] = rot.MulVec(v)
	}
	fit, rmsd, err := FitRotation(ideal, observed)
	require.NoError(t, err)
	assert.Less(t, rmsd, 1e-6)
	assert.True(t, fit.ApproxEqual(rot, 1e-5))
}

func TestFitRotationDegenerate(t *testing.T) {
	_, _, err := FitRotation([]Vec3{{1, 0, 0}}, []Vec3{{1, 0, 0}})
	require.ErrorIs(t, err, ErrDegenerateFit)
}
