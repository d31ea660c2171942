package health

// VaccineStatus tal como lo muestra la tarjeta de vacunas.
type VaccineStatus string

const (
	VaccineUpToDate VaccineStatus = "Up to date"
	VaccineDueSoon  VaccineStatus = "Due soon"
)

type VetVisit struct {
	ID     int
	Date   string
	Reason string
	Notes  string
}

type Vaccination struct {
	ID      int
	Name    string
	Date    string
	DueDate string
	Status  VaccineStatus
}

type WeightPoint struct {
	Month  string
	Weight float64
}

type BehaviorPoint struct {
	Month   string
	Energy  int
	Anxiety int
}

// Tile es una de las cuatro tarjetas del resumen.
type Tile struct {
	Label string
	Value string
	Note  string
}

type Summary struct {
	Tiles []Tile

	CurrentWeight float64
	TargetMin     float64
	TargetMax     float64
	// Cambio en los últimos seis meses, en lbs.
	SixMonthChange float64
}

// Severity del resultado de análisis.
// @Enum low, medium, high
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type AnalysisResult struct {
	Condition      string
	Confidence     int
	Severity       Severity
	Recommendation string
	RequiresVet    bool
}

// MediaKind según el content type subido.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// Media describe lo subido al symptom checker. Los bytes no se leen.
type Media struct {
	ContentType string
	Size        int64
}
