package responses

// Option pairs a canonical answer key with its display label.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Question struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []Option `json:"options,omitempty"`
}

type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Form struct {
	Language     string    `json:"language"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	Sections     []Section `json:"sections"`
}
