// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// surfaceHandle is a null device that reports a surface format.
type surfaceHandle struct {
	NullDeviceHandle
	format gputypes.TextureFormat
}

func (h surfaceHandle) SurfaceFormat() gputypes.TextureFormat { return h.format }

// halHandle exposes a HAL device value of any type.
type halHandle struct {
	NullDeviceHandle
	device any
}

func (h halHandle) HalDevice() any { return h.device }

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
	if info := handle.AdapterInfo(); info.Type != gpucontext.AdapterTypeUnknown || info.Name != "" {
		t.Errorf("NullDeviceHandle.AdapterInfo() = %+v, want unknown adapter", info)
	}
}

func TestTargetFormat(t *testing.T) {
	tests := []struct {
		name   string
		handle DeviceHandle
		want   gputypes.TextureFormat
	}{
		{"nil handle", nil, gputypes.TextureFormatRGBA8Unorm},
		{"null device", NullDeviceHandle{}, gputypes.TextureFormatRGBA8Unorm},
		{"surface format", surfaceHandle{format: gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetFormat(tt.handle); got != tt.want {
				t.Errorf("TargetFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHalDevice(t *testing.T) {
	tests := []struct {
		name   string
		handle DeviceHandle
	}{
		{"nil handle", nil},
		{"no hal provider", NullDeviceHandle{}},
		{"nil hal device", halHandle{}},
		{"wrong hal type", halHandle{device: "not a device"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := HalDevice(tt.handle); ok || d != nil {
				t.Errorf("HalDevice() = %v, %v; want nil, false", d, ok)
			}
		})
	}
}
