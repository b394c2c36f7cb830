package domain

import "context"

// Diagnostic report values.
const (
	BackendRunning = "✅ Running"

	EnvSet    = "✅ Set"
	EnvNotSet = "❌ Not Set"

	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseNotInitialized = "⚠️ Not Available (not initialized)"
	DatabaseAvailable      = "✅ Available"
	DatabaseWorking        = "✅ Connected & Working"
	DatabaseConnectedError = "⚠️ Connected but Error: "
	DatabaseError          = "❌ Error: "

	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"
)

// DiagnosticReport describes backend and database state without exposing configuration values.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// NewDiagnosticReport returns the report for a backend that has not checked anything yet.
func NewDiagnosticReport() DiagnosticReport {
	return DiagnosticReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      EnvNotSet,
		DatabaseName:     EnvNotSet,
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}
}

type DiagnosticUsecase interface {
	// Run never fails; every problem is described in the report.
	Run(ctx context.Context) DiagnosticReport
}
