package curvefill

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.classifyEpsilon != defaultClassifyEpsilon {
		t.Errorf("classifyEpsilon = %v, want %v", o.classifyEpsilon, defaultClassifyEpsilon)
	}
	if o.loopReclassifyEpsilon != defaultLoopReclassifyEpsilon {
		t.Errorf("loopReclassifyEpsilon = %v, want %v", o.loopReclassifyEpsilon, defaultLoopReclassifyEpsilon)
	}
	if !o.tolerateUnclosed {
		t.Error("tolerateUnclosed should default to true")
	}
	if o.coeffWidth != Width64 {
		t.Errorf("coeffWidth = %v, want Width64", o.coeffWidth)
	}
	if o.logger != nil {
		t.Error("logger should default to nil (falls back to package logger)")
	}
}

func TestWithEpsilon(t *testing.T) {
	o := defaultOptions()
	WithEpsilon(1e-2, 1e-5)(&o)
	if o.classifyEpsilon != 1e-2 {
		t.Errorf("classifyEpsilon = %v, want 1e-2", o.classifyEpsilon)
	}
	if o.loopReclassifyEpsilon != 1e-5 {
		t.Errorf("loopReclassifyEpsilon = %v, want 1e-5", o.loopReclassifyEpsilon)
	}
}

func TestWithTolerateUnclosedSubpaths(t *testing.T) {
	o := defaultOptions()
	WithTolerateUnclosedSubpaths(false)(&o)
	if o.tolerateUnclosed {
		t.Error("tolerateUnclosed should be false after WithTolerateUnclosedSubpaths(false)")
	}
}

func TestWithCoefficientWidth(t *testing.T) {
	o := defaultOptions()
	WithCoefficientWidth(Width32)(&o)
	if o.coeffWidth != Width32 {
		t.Errorf("coeffWidth = %v, want Width32", o.coeffWidth)
	}
}

func TestWithLoggerAndResolvedLogger(t *testing.T) {
	o := defaultOptions()
	if o.resolvedLogger() != Logger() {
		t.Error("resolvedLogger() should fall back to the package logger when unset")
	}

	custom := slog.Default()
	WithLogger(custom)(&o)
	if o.resolvedLogger() != custom {
		t.Error("resolvedLogger() should return the call-scoped logger once set")
	}
}
