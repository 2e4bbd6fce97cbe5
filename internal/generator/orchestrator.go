// Package generator drives one documentation run: a single SRS request
// followed by the diagram sections, each tracked independently through
// loading, done, or error, plus the screen mockup set. Observers receive a
// snapshot after every state change so results render incrementally.
package generator

import (
	"context"
	"sync"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/api"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/mockups"
)

// Orchestrator runs documentation generation against a Backend. One
// Orchestrator can run many times; starting a new run supersedes the previous
// one, and late completions from a superseded run are dropped.
type Orchestrator struct {
	backend api.Backend
	screens []string

	mu         sync.Mutex
	run        uint64
	sections   []Section
	screenSet  []ScreenMockup
	generating bool
	onUpdate   func(Snapshot)
}

// New creates an Orchestrator. onUpdate may be nil; when set it is called
// with a snapshot after every mutation, outside the internal lock.
func New(backend api.Backend, screens []string, onUpdate func(Snapshot)) *Orchestrator {
	return &Orchestrator{
		backend:  backend,
		screens:  screens,
		onUpdate: onUpdate,
	}
}

// Snapshot returns a copy of the current run state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{
		Sections:   make([]Section, len(o.sections)),
		Mockups:    make([]ScreenMockup, len(o.screenSet)),
		Generating: o.generating,
	}
	copy(snap.Sections, o.sections)
	copy(snap.Mockups, o.screenSet)
	return snap
}

// notify publishes the current state to the observer.
func (o *Orchestrator) notify() {
	if o.onUpdate == nil {
		return
	}
	o.onUpdate(o.Snapshot())
}

// sectionCall pairs a section name with its backend operation. All section
// operations share the same source text.
type sectionCall struct {
	name string
	call func(context.Context, string) (string, error)
}

// Generate runs a full documentation pass for the description. It blocks
// until every section and the mockup set have been attempted. The SRS step is
// fail-fast: its failure aborts the run. Every later section is fail-soft.
func (o *Orchestrator) Generate(ctx context.Context, description string) (final Snapshot) {
	o.mu.Lock()
	o.run++
	run := o.run
	o.sections = nil
	o.screenSet = nil
	o.generating = true
	o.mu.Unlock()
	o.notify()

	defer func() {
		o.finish(run)
		o.notify()
		final = o.Snapshot()
	}()

	// Step one: the SRS, awaited before anything else. Failure here replaces
	// the whole list with a single error entry and ends the run before any
	// other request goes out.
	srs, err := o.backend.GenerateSRS(ctx, description)
	if err != nil {
		o.replaceSections(run, []Section{{Name: SectionSRS, Content: err.Error(), Status: StatusError}})
		return
	}
	o.replaceSections(run, []Section{{Name: SectionSRS, Content: srs, Status: StatusDone}})

	// Mockups resolve in parallel with the section loop.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		o.generateMockups(ctx, run, description)
	}()
	defer wg.Wait()

	// The SRS output is the shared source for every diagram section; fall
	// back to the raw description if the SRS came back empty.
	source := srs
	if source == "" {
		source = description
	}

	order := []sectionCall{
		{SectionERD, o.backend.GenerateERD},
		{SectionArchitecture, o.backend.GenerateArchitecture},
		{SectionDataflow, o.backend.GenerateDataflow},
		{SectionSequence, o.backend.GenerateSequence},
		{SectionPalette, o.backend.GeneratePalette},
		{SectionMicroservices, o.backend.GenerateMicroservices},
	}

	for _, sec := range order {
		o.appendSection(run, Section{Name: sec.name, Status: StatusLoading})

		content, err := sec.call(ctx, source)
		if err != nil {
			o.resolveSection(run, sec.name, err.Error(), StatusError)
			continue
		}
		o.resolveSection(run, sec.name, EnsureDiagramFence(content), StatusDone)
	}

	return
}

// generateMockups seeds the screen list and resolves it from one mockups
// call. Screens the backend did not return resolve to an error entry; extra
// screens it volunteered are appended.
func (o *Orchestrator) generateMockups(ctx context.Context, run uint64, description string) {
	seed := make([]ScreenMockup, len(o.screens))
	for i, name := range o.screens {
		seed[i] = ScreenMockup{Name: name, Status: StatusLoading}
	}
	o.replaceMockups(run, seed)

	data, err := o.backend.GenerateMockups(ctx, description, "", o.screens)
	if err != nil {
		o.failAllMockups(run, err.Error())
		return
	}

	set, err := mockups.Parse(data)
	if err != nil {
		o.failAllMockups(run, err.Error())
		return
	}

	resolved := make([]ScreenMockup, 0, len(o.screens))
	seen := map[string]bool{}
	for _, name := range o.screens {
		if m, ok := set.Find(name); ok {
			resolved = append(resolved, ScreenMockup{
				Name:        name,
				Description: m.Description,
				HTML:        m.HTMLContent,
				Status:      StatusDone,
			})
			seen[m.ScreenName] = true
			continue
		}
		resolved = append(resolved, ScreenMockup{
			Name:        name,
			Description: "no mockup returned for this screen",
			Status:      StatusError,
		})
	}
	for _, m := range set.Mockups {
		if seen[m.ScreenName] {
			continue
		}
		resolved = append(resolved, ScreenMockup{
			Name:        m.ScreenName,
			Description: m.Description,
			HTML:        m.HTMLContent,
			Status:      StatusDone,
		})
	}
	o.replaceMockups(run, resolved)
}

// replaceSections swaps the section list, if the run is still current.
func (o *Orchestrator) replaceSections(run uint64, sections []Section) {
	o.mu.Lock()
	if run != o.run {
		o.mu.Unlock()
		return
	}
	o.sections = sections
	o.mu.Unlock()
	o.notify()
}

// appendSection adds a pending section row before its network call starts.
func (o *Orchestrator) appendSection(run uint64, sec Section) {
	o.mu.Lock()
	if run != o.run {
		o.mu.Unlock()
		return
	}
	o.sections = append(o.sections, sec)
	o.mu.Unlock()
	o.notify()
}

// resolveSection finds a section by name and replaces its content and status.
// Lookup is by name, never by index, so overlapping completions cannot clobber
// a reordered list. Terminal entries are never moved backwards.
func (o *Orchestrator) resolveSection(run uint64, name, content string, status Status) {
	o.mu.Lock()
	if run != o.run {
		o.mu.Unlock()
		return
	}
	for i := range o.sections {
		if o.sections[i].Name != name {
			continue
		}
		if o.sections[i].Status != StatusLoading {
			break
		}
		o.sections[i].Content = content
		o.sections[i].Status = status
		break
	}
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) replaceMockups(run uint64, set []ScreenMockup) {
	o.mu.Lock()
	if run != o.run {
		o.mu.Unlock()
		return
	}
	o.screenSet = set
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) failAllMockups(run uint64, msg string) {
	o.mu.Lock()
	if run != o.run {
		o.mu.Unlock()
		return
	}
	for i := range o.screenSet {
		if o.screenSet[i].Status == StatusLoading {
			o.screenSet[i].Status = StatusError
			o.screenSet[i].Description = msg
		}
	}
	o.mu.Unlock()
	o.notify()
}

func (o *Orchestrator) finish(run uint64) {
	o.mu.Lock()
	if run == o.run {
		o.generating = false
	}
	o.mu.Unlock()
}
