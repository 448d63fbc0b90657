package glcompat

import (
	"testing"

	"gl-torus/internal/graphics"

	"github.com/go-gl/gl/v2.1/gl"
)

func TestCapabilityMapping(t *testing.T) {
	tests := []struct {
		in   graphics.Capability
		want uint32
	}{
		{graphics.CapLighting, gl.LIGHTING},
		{graphics.CapLight0, gl.LIGHT0},
		{graphics.CapLight7, gl.LIGHT7},
		{graphics.CapAutoNormal, gl.AUTO_NORMAL},
		{graphics.CapNormalize, gl.NORMALIZE},
		{graphics.CapDepthTest, gl.DEPTH_TEST},
	}
	for _, tt := range tests {
		got, ok := glCapability(tt.in)
		if !ok || got != tt.want {
			t.Errorf("glCapability(%v): got %#x, %v; want %#x", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := glCapability(graphics.Capability(-1)); ok {
		t.Errorf("negative capability should not map")
	}
}

func TestFaceMapping(t *testing.T) {
	if glFace(graphics.FaceFront) != gl.FRONT || glFace(graphics.FaceBack) != gl.BACK || glFace(graphics.FaceFrontAndBack) != gl.FRONT_AND_BACK {
		t.Errorf("face mapping mismatch")
	}
}
