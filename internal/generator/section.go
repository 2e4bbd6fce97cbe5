package generator

// Status is the lifecycle state of a section or screen mockup. It only moves
// forward: Loading to Done or Loading to Error, never back.
type Status string

const (
	StatusLoading Status = "loading"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Section is one named unit of generated documentation: the SRS text or one
// diagram. Name is the identity key, unique within a run; the list keeps
// insertion order.
type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Status  Status `json:"status"`
}

// ScreenMockup is one generated UI screen with the same lifecycle as a
// Section.
type ScreenMockup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTML        string `json:"html"`
	Status      Status `json:"status"`
}

// Snapshot is an immutable copy of the run state, handed to observers after
// every mutation.
type Snapshot struct {
	Sections   []Section      `json:"sections"`
	Mockups    []ScreenMockup `json:"mockups"`
	Generating bool           `json:"generating"`
}

// Section names in their fixed dispatch order. The SRS always resolves first;
// the rest run sequentially after it.
const (
	SectionSRS           = "SRS"
	SectionERD           = "ERD"
	SectionArchitecture  = "Architecture"
	SectionDataflow      = "Dataflow"
	SectionSequence      = "Sequence"
	SectionPalette       = "Palette"
	SectionMicroservices = "Microservices"
)
