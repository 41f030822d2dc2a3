// Package verdict produces Santa's short comment on a finished run.
package verdict

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Fallback is returned whenever a provider fails or runs out of time.
const Fallback = "Ho ho ho! Keep practicing those flying skills!"

// Score bands.
const (
	LowScore  = 1000
	HighScore = 3000
)

// Provider turns a run result into a verdict.
type Provider interface {
	Verdict(ctx context.Context, score, presents int) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, score, presents int) (string, error)

// Verdict calls f.
func (f ProviderFunc) Verdict(ctx context.Context, score, presents int) (string, error) {
	return f(ctx, score, presents)
}

var (
	lowOpeners = []string{
		"Ho ho ho, a brave first flight, little reindeer! 🦌",
		"Well done for getting off the ground! ❄️",
		"Every great flyer starts somewhere, my dear! 🎄",
	}
	lowClosers = []string{
		"You need a bit more practice flying before Christmas Eve.",
		"More practice flying and those presents will be yours.",
		"Keep those hooves up and practice your flying a little more.",
	}
	midOpeners = []string{
		"Ho ho ho, a fine run over the northern lights! ✨",
		"Now that is proper reindeer flying! 🦌",
		"The elves were cheering at that one! 🎁",
	}
	midClosers = []string{
		"A few more runs like that and you will lead the sleigh.",
		"Keep it steady and the big night is within reach.",
		"Mrs. Claus is baking cookies in your honour.",
	}
	highOpeners = []string{
		"HO HO HO! That was simply magnificent! 🌟",
		"Rudolph himself would tip his antlers to that! 🦌",
		"My word, the whole workshop stopped to watch! 🎅",
	}
	highClosers = []string{
		"You are Sleigh Team Material!",
		"Consider yourself Sleigh Team Material from today!",
		"That is Sleigh Team Material flying if I ever saw it!",
	}
)

// Santa is an offline provider. The same result always yields the same verdict.
type Santa struct{}

// Verdict picks a two-sentence verdict from the score band.
func (Santa) Verdict(ctx context.Context, score, presents int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("verdict: cannot judge run: %w", err)
	}

	rng := rand.New(rand.NewSource(int64(score)*31 + int64(presents)))

	openers, closers := midOpeners, midClosers
	switch {
	case score < LowScore:
		openers, closers = lowOpeners, lowClosers
	case score > HighScore:
		openers, closers = highOpeners, highClosers
	}

	opener := openers[rng.Intn(len(openers))]
	closer := closers[rng.Intn(len(closers))]
	if presents > 0 && score >= LowScore {
		closer = fmt.Sprintf("%s %s", presentsLine(presents), closer)
	}
	return opener + " " + closer, nil
}

func presentsLine(presents int) string {
	if presents == 1 {
		return "One present safely delivered!"
	}
	return fmt.Sprintf("%d presents safely delivered!", presents)
}

type fallback struct {
	p       Provider
	timeout time.Duration
}

// WithFallback bounds p by timeout and replaces any failure or empty
// answer with Fallback. The returned provider never errors.
func WithFallback(p Provider, timeout time.Duration) Provider {
	return fallback{p: p, timeout: timeout}
}

func (f fallback) Verdict(ctx context.Context, score, presents int) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	type answer struct {
		text string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		text, err := f.p.Verdict(ctx, score, presents)
		done <- answer{text, err}
	}()

	select {
	case a := <-done:
		if a.err != nil || a.text == "" {
			return Fallback, nil
		}
		return a.text, nil
	case <-ctx.Done():
		return Fallback, nil
	}
}
