package music

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-pong/internal/config"
)

const testRate = beep.SampleRate(44100)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(config.DefaultConfig().Music, testRate)
}

// advance streams d seconds of audio to move the engine clock.
func advance(e *Engine, d float64) [][2]float64 {
	out := make([][2]float64, int(d*float64(testRate)))
	e.Stream(out)
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		speed       float64
		want        float64
	}{
		{"kickoff", 0, 0, 4, 0.3},
		{"gap of three", 3, 0, 4, 0.6},
		{"match point", 4, 3, 4, 0.7},
		{"gap at match point", 2, 4, 4, 0.8},
		{"fast ball", 1, 1, 10, 0.6},
		{"slow ball", 0, 0, 2, 0.2},
		{"clamped high", 4, 0, 8, 1},
		{"clamped low", 0, 0, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Intensity(tc.left, tc.right, 5, tc.speed, 4)
			if !approx(got, tc.want) {
				t.Errorf("Intensity = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestTempo(t *testing.T) {
	tests := []struct {
		intensity float64
		want      float64
	}{
		{0, 120},
		{0.5, 160},
		{1, 200},
		{2, 200},
	}

	for _, tc := range tests {
		e := newTestEngine(t)
		e.Start(tc.intensity)
		if got := e.Tempo(); !approx(got, tc.want) {
			t.Errorf("Tempo at %v = %v, expected %v", tc.intensity, got, tc.want)
		}
	}
}

func TestStartStopIdempotent(t *testing.T) {
	e := newTestEngine(t)
	if e.Playing() {
		t.Fatal("New engine should be stopped")
	}

	e.Stop() // Stopping a stopped engine is a no-op
	if e.bass.gain.Pending() != 0 {
		t.Error("Stop on a stopped engine scheduled a fade")
	}

	e.Start(0.5)
	advance(e, 0.6)
	e.Update(0.5)
	beat := e.Beat()

	e.Start(0.5) // Must not reset the beat clock
	if e.Beat() != beat || beat == 0 {
		t.Errorf("Second Start reset the beat: %d -> %d", beat, e.Beat())
	}

	e.Stop()
	e.Stop()
	if e.Playing() {
		t.Error("Engine still playing after Stop")
	}
}

func TestUpdateIgnoredWhenStopped(t *testing.T) {
	e := newTestEngine(t)
	e.Update(1)
	if e.Tempo() != 120 || e.Intensity() != 0 {
		t.Errorf("Stopped engine reacted to Update: tempo=%v", e.Tempo())
	}
}

func TestVoiceThresholds(t *testing.T) {
	tests := []struct {
		intensity       float64
		drum, lead, arp bool
	}{
		{0.3, false, false, false},
		{0.4, false, false, false},
		{0.5, true, false, false},
		{0.7, true, true, false},
		{0.9, true, true, true},
	}

	for _, tc := range tests {
		e := newTestEngine(t)
		e.Start(tc.intensity)
		now := e.now()

		if got := e.bass.gain.ValueAt(now); !approx(got, bassLevel*tc.intensity) {
			t.Errorf("Bass gain at %v = %v, expected %v", tc.intensity, got, bassLevel*tc.intensity)
		}
		if on := e.drum.gain.ValueAt(now) > 0; on != tc.drum {
			t.Errorf("Drum at %v: on=%v, expected %v", tc.intensity, on, tc.drum)
		}
		if on := e.lead.gain.ValueAt(now) > 0; on != tc.lead {
			t.Errorf("Lead at %v: on=%v, expected %v", tc.intensity, on, tc.lead)
		}
		if on := e.arp.gain.ValueAt(now) > 0; on != tc.arp {
			t.Errorf("Arp at %v: on=%v, expected %v", tc.intensity, on, tc.arp)
		}
	}
}

func TestFirstBeat(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0.9)
	now := e.now()

	if got := e.bass.osc.Frequency.ValueAt(now); got != 55 {
		t.Errorf("Bass note = %v, expected 55", got)
	}
	if got := e.drum.osc.Frequency.ValueAt(now); got != kickFreq {
		t.Errorf("Drum = %v Hz, expected kick at %v", got, kickFreq)
	}
	if got := e.drum.gain.ValueAt(now); got != kickLevel {
		t.Errorf("Kick gain = %v, expected %v", got, kickLevel)
	}
	if got := e.drum.gain.ValueAt(now + kickDecay); !approx(got, drumFloor) {
		t.Errorf("Kick decayed to %v, expected %v", got, drumFloor)
	}
	if got := e.lead.osc.Frequency.ValueAt(now); got != 440 {
		t.Errorf("Lead note = %v, expected 440", got)
	}
	if got := e.lead.gain.ValueAt(now); !approx(got, leadLevel*0.9) {
		t.Errorf("Lead gain = %v, expected %v", got, leadLevel*0.9)
	}
	if got := e.arp.osc.Frequency.ValueAt(now); got != 880 {
		t.Errorf("Arp note = %v, expected 880", got)
	}
}

func TestBassPattern(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0) // 120 BPM, half a second per beat

	want := []float64{55, 55, 82.41, 55, 55, 82.41, 73.42, 73.42, 55}
	for beat, note := range want {
		if beat > 0 {
			advance(e, 0.5)
			e.Update(0)
		}
		if e.Beat() != beat {
			t.Fatalf("Beat = %d, expected %d", e.Beat(), beat)
		}
		if got := e.bass.osc.Frequency.ValueAt(e.now()); got != note {
			t.Errorf("Beat %d bass = %v, expected %v", beat, got, note)
		}
	}
}

func TestLeadRestAndSnare(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0.7) // 176 BPM

	beatLen := 60 / e.Tempo()
	advance(e, beatLen*1.1)
	e.Update(0.7)
	if e.Beat() != 1 {
		t.Fatalf("Beat = %d, expected 1", e.Beat())
	}
	if got := e.lead.gain.ValueAt(e.now()); got != 0 {
		t.Errorf("Lead gain on rest = %v, expected 0", got)
	}

	advance(e, beatLen)
	e.Update(0.7)
	if e.Beat() != 2 {
		t.Fatalf("Beat = %d, expected 2", e.Beat())
	}
	if got := e.drum.osc.Frequency.ValueAt(e.now()); got != snareFreq {
		t.Errorf("Drum on beat 2 = %v Hz, expected snare %v", got, snareFreq)
	}
	if got := e.lead.osc.Frequency.ValueAt(e.now()); got != 523.25 {
		t.Errorf("Lead on beat 2 = %v, expected 523.25", got)
	}
}

func TestBeatClockFollowsTempoChanges(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0) // 120 BPM

	advance(e, 0.55) // 1.1 beats at the old tempo
	e.Update(1)      // Now 200 BPM
	if e.Beat() != 1 {
		t.Fatalf("Beat = %d, expected 1", e.Beat())
	}

	advance(e, 0.33) // 1.1 beats at the new tempo
	e.Update(1)
	if e.Beat() != 2 {
		t.Errorf("Beat = %d, expected 2", e.Beat())
	}
}

func TestStopFadesOut(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0.9)
	advance(e, 0.02)
	e.Stop()
	now := e.now()

	for name, v := range map[string]voice{"bass": e.bass, "lead": e.lead, "drum": e.drum, "arp": e.arp} {
		if got := v.gain.ValueAt(now + fadeTime); !approx(got, fadeFloor) {
			t.Errorf("%s gain after fade = %v, expected %v", name, got, fadeFloor)
		}
	}

	// Updates after Stop do not bring the voices back
	e.Update(0.9)
	if got := e.bass.gain.ValueAt(now + 1); !approx(got, fadeFloor) {
		t.Errorf("Bass came back after Stop: %v", got)
	}
}

func TestStream(t *testing.T) {
	e := newTestEngine(t)

	silent := advance(e, 0.05)
	for i, s := range silent {
		if s[0] != 0 {
			t.Fatalf("Sample %d = %v before Start, expected silence", i, s[0])
		}
	}

	e.Start(1)
	out := advance(e, 0.1)

	volume := config.DefaultConfig().Music.Volume
	limit := volume * (bassLevel + kickLevel + leadLevel + arpLevel)
	peak := 0.0
	for _, s := range out {
		if s[0] != s[1] {
			t.Fatal("Music should be mono")
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("No sound after Start")
	}
	if peak > limit+1e-9 {
		t.Errorf("Peak %v exceeds mix limit %v", peak, limit)
	}

	n, ok := e.Stream(make([][2]float64, 64))
	if n != 64 || !ok || e.Err() != nil {
		t.Error("Music stream should never drain")
	}
}

func TestUpdateWithoutStreaming(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0.9)
	for range 1000 {
		e.Update(0.9)
	}
	for _, v := range e.voices() {
		if v.gain.Pending() > 4 || v.osc.Frequency.Pending() > 4 {
			t.Errorf("Automation grew on a stalled clock: gain=%d freq=%d", v.gain.Pending(), v.osc.Frequency.Pending())
		}
	}
	if e.Beat() != 0 {
		t.Errorf("Beat = %d on a stalled clock, expected 0", e.Beat())
	}
}

func TestEventsStayBounded(t *testing.T) {
	e := newTestEngine(t)
	e.Start(0.9)
	for range 500 {
		advance(e, 0.05)
		e.Update(0.9)
	}
	for _, v := range e.voices() {
		if v.gain.Pending() > 4 || v.osc.Frequency.Pending() > 4 {
			t.Errorf("Automation grew without bound: gain=%d freq=%d", v.gain.Pending(), v.osc.Frequency.Pending())
		}
	}
}
