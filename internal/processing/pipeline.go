// Package processing renders the iris analysis pipeline shown after a
// capture: four sequential stages with fixed durations, synthesized
// intermediate imagery and a generated template code. The stages are a
// visualization only, the actual matching happens server-side.
package processing

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/ui"
)

type StageStatus string

const (
	StatusPending    StageStatus = "pending"
	StatusProcessing StageStatus = "processing"
	StatusCompleted  StageStatus = "completed"
)

// codeBits is the length of the displayed template bit string.
const codeBits = 2048

// StageRecord is the displayed state of one pipeline stage.
type StageRecord struct {
	Name        string
	Status      StageStatus
	Duration    time.Duration
	BeforeImage string
	AfterImage  string
	Code        string
}

var stageDefs = []struct {
	name     string
	duration time.Duration
}{
	{"Segmentation", 1200 * time.Millisecond},
	{"Normalisation", 1000 * time.Millisecond},
	{"Extraction", 1500 * time.Millisecond},
	{"Encodage", 800 * time.Millisecond},
}

// Pipeline drives the stage sequence. The zero delay behaviour needed by
// tests is obtained through the sleep seam.
type Pipeline struct {
	log    logging.Logger
	stages []StageRecord

	// sleep is a test seam standing in for the per-stage delay.
	sleep func(ctx context.Context, d time.Duration) error

	// finalize, when set, is invoked by FinalizeEnrollment once the user
	// acknowledges the completed pipeline.
	finalize func(ctx context.Context) error

	onChange func()
}

func NewPipeline(log logging.Logger) *Pipeline {
	p := &Pipeline{log: log, sleep: sleepCtx}
	p.Reset()
	return p
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// OnChange registers a redraw callback fired after every stage transition.
func (p *Pipeline) OnChange(fn func()) { p.onChange = fn }

// OnFinalize registers the action run by FinalizeEnrollment.
func (p *Pipeline) OnFinalize(fn func(ctx context.Context) error) { p.finalize = fn }

// Reset returns every stage to pending and clears all imagery.
func (p *Pipeline) Reset() {
	p.stages = make([]StageRecord, len(stageDefs))
	for i, def := range stageDefs {
		p.stages[i] = StageRecord{Name: def.name, Status: StatusPending, Duration: def.duration}
	}
	p.changed()
}

// Stages returns a copy of the current stage records.
func (p *Pipeline) Stages() []StageRecord {
	out := make([]StageRecord, len(p.stages))
	copy(out, p.stages)
	return out
}

// Progress reports completion as a percentage in 25% increments.
func (p *Pipeline) Progress() int {
	completed := 0
	for _, s := range p.stages {
		if s.Status == StatusCompleted {
			completed++
		}
	}
	return completed * 100 / len(p.stages)
}

// Done reports whether every stage has completed.
func (p *Pipeline) Done() bool { return p.Progress() == 100 }

// Start runs the stages in order against the captured image. Each stage
// waits its fixed duration, then produces an output frame that becomes the
// next stage's input. The last stage additionally emits the template code.
func (p *Pipeline) Start(ctx context.Context, capture []byte) error {
	p.Reset()

	before := ui.DataURL(capture)
	for i := range p.stages {
		p.stages[i].Status = StatusProcessing
		p.stages[i].BeforeImage = before
		p.changed()

		if err := p.sleep(ctx, p.stages[i].Duration); err != nil {
			p.log.Error(ctx, "pipeline interrupted", "stage", p.stages[i].Name, "error", err)
			return err
		}

		after, err := synthFrame(i)
		if err != nil {
			p.log.Error(ctx, "stage frame synthesis failed", "stage", p.stages[i].Name, "error", err)
			return err
		}
		p.stages[i].AfterImage = ui.DataURL(after)
		if i == len(p.stages)-1 {
			p.stages[i].Code = randBitString(codeBits)
		}
		p.stages[i].Status = StatusCompleted
		p.changed()

		before = p.stages[i].AfterImage
	}
	return nil
}

// FinalizeEnrollment hands control back to the enrollment flow once the
// pipeline has played out.
func (p *Pipeline) FinalizeEnrollment(ctx context.Context) error {
	if p.finalize == nil {
		return nil
	}
	return p.finalize(ctx)
}

func (p *Pipeline) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

// randBitString returns n random '0'/'1' characters.
func randBitString(n int) string {
	buf := make([]byte, (n+7)/8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	out := make([]byte, n)
	for i := range out {
		if buf[i/8]&(1<<(i%8)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
