package enhance

import (
	"errors"
	"testing"

	"server/internal/domain"
)

func testSource() domain.Image {
	return domain.Image{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIMEType: "image/png"}
}

func TestSessionInitialState(t *testing.T) {
	v := NewSession("s1").Snapshot()
	if v.Status != StatusIdle {
		t.Fatalf("expected idle, got %s", v.Status)
	}
	if v.Source != nil || v.Result != nil || v.Failure != nil {
		t.Fatalf("fresh session not empty: %+v", v)
	}
	if v.Settings != DefaultSettings() {
		t.Fatalf("fresh session settings not defaults: %+v", v.Settings)
	}
}

func TestBeginWithoutSourceIsValidationError(t *testing.T) {
	s := NewSession("s1")
	_, _, _, err := s.Begin()
	if !errors.Is(err, domain.ErrNoSourceImage) {
		t.Fatalf("expected ErrNoSourceImage, got %v", err)
	}
	v := s.Snapshot()
	if v.Status != StatusError {
		t.Fatalf("guard failure must land in error state, got %s", v.Status)
	}
	if !errors.Is(v.Failure, domain.ErrNoSourceImage) {
		t.Fatalf("failure not recorded: %v", v.Failure)
	}
}

func TestBeginRejectsSecondAttemptWhileLoading(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	if _, _, _, err := s.Begin(); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if _, _, _, err := s.Begin(); !errors.Is(err, domain.ErrEnhanceInFlight) {
		t.Fatalf("expected ErrEnhanceInFlight, got %v", err)
	}
}

func TestBeginCompilesInstructionFromSettings(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	s.ApplySettings(Settings{Brightness: 120, Contrast: 80, NoiseReduction: 30, Effect: EffectSepia})
	_, src, instruction, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if src.MIMEType != "image/png" {
		t.Fatalf("source snapshot mismatch: %+v", src)
	}
	want := BuildInstruction(Settings{Brightness: 120, Contrast: 80, NoiseReduction: 30, Effect: EffectSepia})
	if instruction != want {
		t.Fatalf("instruction mismatch:\n got %s\nwant %s", instruction, want)
	}
}

func TestCompleteSuccessStoresResult(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	gen, _, _, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	out := domain.Image{Data: []byte("jpeg"), MIMEType: "image/jpeg"}
	if !s.Complete(gen, &out, nil) {
		t.Fatalf("Complete() dropped a live attempt")
	}
	v := s.Snapshot()
	if v.Status != StatusSuccess || v.Result == nil || v.Failure != nil {
		t.Fatalf("unexpected state after success: %+v", v)
	}
	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if got.MIMEType != "image/jpeg" {
		t.Fatalf("result mime mismatch: %s", got.MIMEType)
	}
}

func TestCompleteFailureStoresError(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	gen, _, _, _ := s.Begin()
	if !s.Complete(gen, nil, domain.ErrRateLimited) {
		t.Fatalf("Complete() dropped a live attempt")
	}
	v := s.Snapshot()
	if v.Status != StatusError || v.Result != nil {
		t.Fatalf("unexpected state after failure: %+v", v)
	}
	if !errors.Is(v.Failure, domain.ErrRateLimited) {
		t.Fatalf("failure classification lost: %v", v.Failure)
	}
}

func TestResetDiscardsLateCompletion(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	gen, _, _, _ := s.Begin()

	s.Reset()

	out := domain.Image{Data: []byte("late"), MIMEType: "image/png"}
	if s.Complete(gen, &out, nil) {
		t.Fatalf("stale completion must be dropped after reset")
	}
	v := s.Snapshot()
	if v.Status != StatusIdle || v.Result != nil || v.Source != nil {
		t.Fatalf("reset state resurrected: %+v", v)
	}
}

func TestNewUploadDiscardsLateCompletion(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	gen, _, _, _ := s.Begin()

	s.SetSource(domain.Image{Data: []byte("v2"), MIMEType: "image/jpeg"})

	if s.Complete(gen, &domain.Image{Data: []byte("late")}, nil) {
		t.Fatalf("stale completion must be dropped after a new upload")
	}
	v := s.Snapshot()
	if v.Status != StatusIdle {
		t.Fatalf("expected idle after new upload, got %s", v.Status)
	}
	if v.Settings != DefaultSettings() {
		t.Fatalf("settings not reset on new upload: %+v", v.Settings)
	}
}

func TestResetRestoresDefaultsFromAnyState(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	s.ApplySettings(Settings{Brightness: 150, Contrast: 50, NoiseReduction: 100, Effect: EffectCartoon})
	gen, _, _, _ := s.Begin()
	s.Complete(gen, nil, domain.ErrEnhancementFailed)

	v := s.Reset()
	if v.Status != StatusIdle || v.Source != nil || v.Result != nil || v.Failure != nil {
		t.Fatalf("reset incomplete: %+v", v)
	}
	if v.Settings != DefaultSettings() {
		t.Fatalf("settings not restored: %+v", v.Settings)
	}
}

func TestApplySettingsDoesNotTouchStatus(t *testing.T) {
	s := NewSession("s1")
	s.SetSource(testSource())
	gen, _, _, _ := s.Begin()
	s.Complete(gen, &domain.Image{Data: []byte("ok"), MIMEType: "image/png"}, nil)

	v := s.ApplySettings(Settings{Brightness: 70, Contrast: 130, NoiseReduction: 10, Effect: EffectBW})
	if v.Status != StatusSuccess {
		t.Fatalf("settings mutation changed status to %s", v.Status)
	}
	if v.Settings.Brightness != 70 || v.Settings.Effect != EffectBW {
		t.Fatalf("settings not applied: %+v", v.Settings)
	}
}

func TestResultOutsideSuccess(t *testing.T) {
	s := NewSession("s1")
	if _, err := s.Result(); !errors.Is(err, domain.ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}
