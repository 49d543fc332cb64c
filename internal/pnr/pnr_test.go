package pnr

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateFormat(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		got, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !Valid(got) {
			t.Fatalf("generated %q does not match the internal format", got)
		}
		seen[got] = struct{}{}
	}
	// 26^5 * 10^5 possibilities; 500 draws colliding more than a handful of times means a broken source.
	if len(seen) < 495 {
		t.Fatalf("too many duplicates: %d distinct out of 500", len(seen))
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"ABCDE12345":  true,
		"abcde12345":  false,
		"ABCD123456":  false,
		"ABCDE1234":   false,
		"ABCDE123456": false,
		"4829635210":  false,
		"":            false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Errorf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateUniqueRerollsCollisions(t *testing.T) {
	calls := 0
	exists := func(_ context.Context, candidate string) (bool, error) {
		calls++
		return calls < 4, nil
	}

	got, err := GenerateUnique(context.Background(), exists, MaxAttempts)
	if err != nil {
		t.Fatalf("GenerateUnique: %v", err)
	}
	if !Valid(got) {
		t.Fatalf("invalid pnr %q", got)
	}
	if calls != 4 {
		t.Fatalf("probe called %d times, want 4", calls)
	}
}

func TestGenerateUniqueGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := GenerateUnique(context.Background(), exists, 0)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if calls != MaxAttempts {
		t.Fatalf("probe called %d times, want %d", calls, MaxAttempts)
	}
}

func TestGenerateUniquePropagatesProbeErrors(t *testing.T) {
	boom := errors.New("db down")
	_, err := GenerateUnique(context.Background(), func(context.Context, string) (bool, error) {
		return false, boom
	}, 3)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped probe error", err)
	}
}
