package colorprim

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
)

// withDispatchState snapshots the process-wide capability state and
// restores it when the test finishes, so tests may reinitialize freely.
func withDispatchState(t *testing.T) {
	t.Helper()
	savedInit := initialized
	savedLevel := currentLevel
	savedVendor := currentVendor
	savedKernels := activeKernels
	t.Cleanup(func() {
		initialized = savedInit
		currentLevel = savedLevel
		currentVendor = savedVendor
		activeKernels = savedKernels
	})
}

func TestDescribeAccelerationBeforeInitialize(t *testing.T) {
	withDispatchState(t)
	initialized = false
	activeKernels = nil

	if _, err := DescribeAcceleration(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
}

func TestDescribeAccelerationAfterInitialize(t *testing.T) {
	withDispatchState(t)
	initialized = false
	Initialize()

	desc, err := DescribeAcceleration()
	if err != nil {
		t.Fatalf("DescribeAcceleration: %v", err)
	}
	pattern := regexp.MustCompile(`^\{cpu-manufacturer:(X86|Arm|Generic),instruction-set:(None|Sse2|Avx2|Avx512|Neon)\}$`)
	if !pattern.MatchString(desc) {
		t.Errorf("description %q does not match %v", desc, pattern)
	}
	if want := fmt.Sprintf("{cpu-manufacturer:%s,instruction-set:%s}", currentVendor, currentLevel); desc != want {
		t.Errorf("got %q, want %q", desc, want)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	withDispatchState(t)
	initialized = false
	Initialize()
	level := CurrentLevel()
	kernels := activeKernels

	Initialize()
	if CurrentLevel() != level {
		t.Errorf("level changed from %v to %v on second call", level, CurrentLevel())
	}
	if len(activeKernels) != len(kernels) {
		t.Errorf("kernel set changed on second call")
	}
}

func TestInitializeNoSimdOverride(t *testing.T) {
	withDispatchState(t)
	t.Setenv("COLORPRIM_NO_SIMD", "1")
	initialized = false
	Initialize()

	if CurrentLevel() != DispatchScalar {
		t.Errorf("got level %v, want DispatchScalar", CurrentLevel())
	}
	desc, err := DescribeAcceleration()
	if err != nil {
		t.Fatalf("DescribeAcceleration: %v", err)
	}
	if want := "instruction-set:None}"; len(desc) < len(want) || desc[len(desc)-len(want):] != want {
		t.Errorf("description %q does not report the scalar tier", desc)
	}
}

func TestNoSimdEnvParsing(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true}, // unparseable values disable SIMD
	}
	for _, tc := range cases {
		t.Run("value "+tc.val, func(t *testing.T) {
			t.Setenv("COLORPRIM_NO_SIMD", tc.val)
			if got := noSimdEnv(); got != tc.want {
				t.Errorf("noSimdEnv() with %q = %v, want %v", tc.val, got, tc.want)
			}
		})
	}
}

func TestSelectKernels(t *testing.T) {
	t.Run("scalar keeps the base set", func(t *testing.T) {
		active := selectKernels(DispatchScalar)
		if len(active) != len(baseKernels) {
			t.Errorf("got %d kernels, want %d", len(active), len(baseKernels))
		}
	})

	t.Run("higher tiers cover every base pair", func(t *testing.T) {
		for _, level := range []DispatchLevel{DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON} {
			active := selectKernels(level)
			if len(active) != len(baseKernels) {
				t.Errorf("%v: got %d kernels, want %d", level, len(active), len(baseKernels))
			}
			for key := range baseKernels {
				if _, ok := active[key]; !ok {
					t.Errorf("%v: pair %v missing", level, key)
				}
			}
		}
	})

	t.Run("block set only holds known pairs", func(t *testing.T) {
		for key := range blockKernels {
			if _, ok := baseKernels[key]; !ok {
				t.Errorf("block kernel %v has no base counterpart", key)
			}
		}
	})
}

func TestDispatchLevelString(t *testing.T) {
	cases := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "None"},
		{DispatchSSE2, "Sse2"},
		{DispatchAVX2, "Avx2"},
		{DispatchAVX512, "Avx512"},
		{DispatchNEON, "Neon"},
		{DispatchLevel(42), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.level), got, tc.want)
		}
	}
}
