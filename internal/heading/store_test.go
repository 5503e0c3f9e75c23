package heading

import "testing"

func TestNewStore(t *testing.T) {
	s := NewStore()
	if s.Heading() != 0 {
		t.Errorf("initial heading = %d, want 0", s.Heading())
	}
	if s.Text() != "0" {
		t.Errorf("initial text = %q, want %q", s.Text(), "0")
	}
}

func TestStore_SetNormalizesValueAndText(t *testing.T) {
	s := NewStore()

	if got := s.Set(-90); got != 270 {
		t.Errorf("Set(-90) = %d, want 270", got)
	}
	if s.Text() != "270" {
		t.Errorf("text = %q, want %q", s.Text(), "270")
	}
}

func TestStore_SetText(t *testing.T) {
	s := NewStore()
	s.Set(42)

	if !s.SetText("450") {
		t.Fatal("SetText(450) should be accepted")
	}
	if s.Heading() != 90 || s.Text() != "90" {
		t.Errorf("after SetText(450): heading=%d text=%q, want 90 %q", s.Heading(), s.Text(), "90")
	}

	if s.SetText("abc") {
		t.Fatal("SetText(abc) should be rejected")
	}
	if s.Heading() != 90 {
		t.Errorf("heading changed to %d on invalid input", s.Heading())
	}
	if s.Text() != "abc" {
		t.Errorf("text = %q, want raw %q kept", s.Text(), "abc")
	}

	if s.SetText("") {
		t.Fatal("empty text should be rejected")
	}
	if s.Heading() != 90 {
		t.Errorf("heading changed to %d on empty input", s.Heading())
	}

	if !s.SetText("-1") {
		t.Fatal("SetText(-1) should be accepted")
	}
	if s.Heading() != 359 || s.Text() != "359" {
		t.Errorf("after SetText(-1): heading=%d text=%q", s.Heading(), s.Text())
	}
}

func TestStore_AdvanceFullCircle(t *testing.T) {
	s := NewStore()
	s.Set(123)

	for i := 0; i < FullCircle; i++ {
		s.Advance(1)
	}

	if s.Heading() != 123 {
		t.Errorf("after 360 single-degree steps heading = %d, want 123", s.Heading())
	}
	if s.Text() != "123" {
		t.Errorf("text = %q, want %q", s.Text(), "123")
	}
}
