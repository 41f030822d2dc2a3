package verdict

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSantaBands(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		presents int
		contains string
		excludes string
	}{
		{"low", 250, 0, "practic", "Sleigh Team Material"},
		{"low boundary", 999, 3, "practic", "Sleigh Team Material"},
		{"high", 4200, 12, "Sleigh Team Material", "practic"},
		{"mid has no title", 3000, 5, "presents safely delivered", "Sleigh Team Material"},
		{"single present", 1500, 1, "One present", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Santa{}.Verdict(context.Background(), tt.score, tt.presents)
			if err != nil {
				t.Fatalf("Verdict() error = %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Verdict() = %q, want it to contain %q", got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("Verdict() = %q, should not contain %q", got, tt.excludes)
			}
		})
	}
}

func TestSantaDeterministic(t *testing.T) {
	a, _ := Santa{}.Verdict(context.Background(), 1234, 7)
	b, _ := Santa{}.Verdict(context.Background(), 1234, 7)
	if a != b {
		t.Errorf("same run gave %q and %q", a, b)
	}
}

func TestSantaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Santa{}).Verdict(ctx, 100, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Verdict() error = %v, want context.Canceled", err)
	}
}

func TestWithFallback(t *testing.T) {
	failing := ProviderFunc(func(context.Context, int, int) (string, error) {
		return "", errors.New("no sleigh bells")
	})
	empty := ProviderFunc(func(context.Context, int, int) (string, error) {
		return "", nil
	})
	slow := ProviderFunc(func(ctx context.Context, _, _ int) (string, error) {
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		return "too late", nil
	})
	ok := ProviderFunc(func(context.Context, int, int) (string, error) {
		return "Splendid!", nil
	})

	tests := []struct {
		name string
		p    Provider
		want string
	}{
		{"error", failing, Fallback},
		{"empty", empty, Fallback},
		{"timeout", slow, Fallback},
		{"success", ok, "Splendid!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithFallback(tt.p, 20*time.Millisecond).Verdict(context.Background(), 500, 1)
			if err != nil {
				t.Fatalf("Verdict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Verdict() = %q, want %q", got, tt.want)
			}
		})
	}
}
