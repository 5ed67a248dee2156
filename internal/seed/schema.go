package seed

// Data is the top-level structure of the seed file.
type Data struct {
	Destinations []DestinationRecord `yaml:"destinations"`
	Reports      []ReportRecord      `yaml:"reports"`
	Events       []EventRecord       `yaml:"events"`
}

// DestinationRecord mirrors domain.Destination with YAML tags. Type and
// href may be omitted and are derived on load.
type DestinationRecord struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	Type        string   `yaml:"type,omitempty"`
	Tags        []string `yaml:"tags"`
	Users       int      `yaml:"users"`
	Href        string   `yaml:"href,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Image       string   `yaml:"image,omitempty"`
}

// ReportRecord mirrors domain.Report.
type ReportRecord struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
	Author   string `yaml:"author"`
	Status   string `yaml:"status"`
	Size     string `yaml:"size"`
}

// EventRecord mirrors domain.Event.
type EventRecord struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	Category    string `yaml:"category"`
	Attendees   string `yaml:"attendees"`
	Status      string `yaml:"status"`
	Image       string `yaml:"image"`
	Description string `yaml:"description,omitempty"`
}
