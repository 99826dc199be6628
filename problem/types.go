package problem

// Problem is the judging view: it carries the grading input/output text
// that must never leave the backend.
type Problem struct {
	ID        string
	Name      string
	MaxPoints int

	InputText        string
	OutputText       string
	InstructionsText string

	InputFileURL        string
	OutputFileURL       string
	InstructionsFileURL string
	WindowsFileURL      string
	ObjectFileURL       string
	MacFileURL          string

	Multiplier   int
	SampleInput  string
	SampleOutput string
}

// PublicProblem is the projection served to contestants. It excludes the
// grading input/output text.
type PublicProblem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MaxPoints        int    `json:"maxPoints"`
	InstructionsText string `json:"instructionsText"`
	WindowsFileURL   string `json:"windowsFileURL"`
	ObjectFileURL    string `json:"objectFileURL"`
	MacFileURL       string `json:"macFileURL"`
	Multiplier       int    `json:"multiplier"`
	SampleInput      string `json:"sampleInput"`
	SampleOutput     string `json:"sampleOutput"`
}

func (p *Problem) Public() PublicProblem {
	return PublicProblem{
		ID:               p.ID,
		Name:             p.Name,
		MaxPoints:        p.MaxPoints,
		InstructionsText: p.InstructionsText,
		WindowsFileURL:   p.WindowsFileURL,
		ObjectFileURL:    p.ObjectFileURL,
		MacFileURL:       p.MacFileURL,
		Multiplier:       p.Multiplier,
		SampleInput:      p.SampleInput,
		SampleOutput:     p.SampleOutput,
	}
}
